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

import "gonum.org/v1/gonum/floats"

// Aggregate calculates the rate constant of each channel at every
// temperature in T and returns the element-wise sum across channels
// (total) along with the per-channel values (components) in the order
// the channels were given.
func Aggregate(channels []RateParameters, T []float64, R float64) (total []float64, components [][]float64) {
	total = make([]float64, len(T))
	components = make([][]float64, len(channels))
	for i, p := range channels {
		components[i] = Evaluate(nil, T, p, R)
		floats.Add(total, components[i])
	}
	return total, components
}

// aggregateAt returns the total and per-channel rate constants at a
// single temperature.
func aggregateAt(channels []RateParameters, T, R float64) (total float64, components []float64) {
	components = make([]float64, len(channels))
	for i, p := range channels {
		components[i] = p.K(T, R)
		total += components[i]
	}
	return total, components
}
