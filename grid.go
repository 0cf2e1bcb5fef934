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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// TemperatureGrid returns n evenly spaced temperatures [K] from tMin to
// tMax, both included. It panics if n < 2.
func TemperatureGrid(tMin, tMax float64, n int) []float64 {
	T := floats.Span(make([]float64, n), tMin, tMax)
	T[n-1] = tMax // avoid round-off in the last step
	return T
}

// Axis specifies how temperature is represented on the horizontal axis.
type Axis int

// Available axis representations.
const (
	// AxisTemperature plots against temperature in K.
	AxisTemperature Axis = iota

	// AxisInverse plots against 1000/T, the classical Arrhenius plot.
	AxisInverse
)

func (a Axis) String() string {
	switch a {
	case AxisTemperature:
		return "T"
	case AxisInverse:
		return "1000/T"
	}
	return "Unknown"
}

// ParseAxis returns the axis representation with the given name.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "k", "temperature":
		return AxisTemperature, nil
	case "1000/t", "inverse", "arrhenius":
		return AxisInverse, nil
	}
	return AxisTemperature, fmt.Errorf("arrhenius: invalid axis '%s'; valid options are T and 1000/T", s)
}

// X converts temperature T [K] to the axis coordinate.
func (a Axis) X(T float64) float64 {
	if a == AxisInverse {
		return 1000 / T
	}
	return T
}

// Xs converts every temperature in T to axis coordinates.
func (a Axis) Xs(T []float64) []float64 {
	x := make([]float64, len(T))
	for i, t := range T {
		x[i] = a.X(t)
	}
	return x
}

// Range returns the axis range for a temperature sweep from tMin to tMax.
// The inverse representation decreases with temperature, so its
// bounds are swapped relative to the temperature bounds.
func (a Axis) Range(tMin, tMax float64) Range {
	if a == AxisInverse {
		return Range{Min: 1000 / tMax, Max: 1000 / tMin}
	}
	return Range{Min: tMin, Max: tMax}
}

// Range is a closed interval on a plot axis.
type Range struct {
	Min, Max float64
}
