/*
Copyright © 2026 the Arrhenius authors.
This file is part of Arrhenius.

Arrhenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Arrhenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Arrhenius.  If not, see <http://www.gnu.org/licenses/>.
*/

package arrhenius

import (
	"math"
	"testing"
)

var dupChannels = []RateParameters{
	{A: 5.41e4, N: 2.16, Ea: -3597},
	{A: 1.73e5, N: 2.19, Ea: 18010},
}

func TestAggregate(t *testing.T) {
	T := []float64{300, 1000, 2000}
	total, components := Aggregate(dupChannels, T, RCal)
	if len(components) != 2 {
		t.Fatalf("have %d components, want 2", len(components))
	}
	for i, temp := range T {
		k1 := 5.41e4 * math.Pow(temp, 2.16) * math.Exp(3597/(1.987*temp))
		k2 := 1.73e5 * math.Pow(temp, 2.19) * math.Exp(-18010/(1.987*temp))
		if different(components[0][i], k1, 1e-12) {
			t.Errorf("channel 1, T=%g: have %g, want %g", temp, components[0][i], k1)
		}
		if different(components[1][i], k2, 1e-12) {
			t.Errorf("channel 2, T=%g: have %g, want %g", temp, components[1][i], k2)
		}
		if different(total[i], k1+k2, 1e-12) {
			t.Errorf("total, T=%g: have %g, want %g", temp, total[i], k1+k2)
		}
	}
}

// The logarithm must be taken after the channels are summed.
func TestAggregateLogOfSum(t *testing.T) {
	total, components := Aggregate(dupChannels, []float64{1000}, RCal)
	logSum := math.Log10(total[0])
	sumLog := math.Log10(components[0][0]) + math.Log10(components[1][0])
	if !different(logSum, sumLog, 1e-6) {
		t.Errorf("log of sum %g should not equal sum of logs %g", logSum, sumLog)
	}
	want := math.Log10(components[0][0] + components[1][0])
	if different(logSum, want, 1e-14) {
		t.Errorf("have %g, want %g", logSum, want)
	}
}

func TestAggregateOrder(t *testing.T) {
	T := TemperatureGrid(300, 2000, 20)
	a, _ := Aggregate(dupChannels, T, RCal)
	b, _ := Aggregate([]RateParameters{dupChannels[1], dupChannels[0]}, T, RCal)
	for i := range T {
		if different(a[i], b[i], 1e-14) {
			t.Errorf("T=%g: %g != %g", T[i], a[i], b[i])
		}
	}
}

func TestAggregateSingleChannel(t *testing.T) {
	T := []float64{500, 1500}
	p := RateParameters{A: 2.64e16, N: -0.67, Ea: 16800}
	total, components := Aggregate([]RateParameters{p}, T, RCal)
	for i, temp := range T {
		if total[i] != p.K(temp, RCal) || components[0][i] != total[i] {
			t.Errorf("T=%g: total %g, component %g, want %g", temp, total[i], components[0][i], p.K(temp, RCal))
		}
	}
}

func TestAggregateAt(t *testing.T) {
	T := []float64{1000}
	total, components := Aggregate(dupChannels, T, RCal)
	total2, components2 := aggregateAt(dupChannels, 1000, RCal)
	if different(total[0], total2, 1e-14) {
		t.Errorf("have %g, want %g", total2, total[0])
	}
	for i := range components2 {
		if components2[i] != components[i][0] {
			t.Errorf("channel %d: have %g, want %g", i+1, components2[i], components[i][0])
		}
	}
}
