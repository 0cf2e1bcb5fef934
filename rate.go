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
	"math"
	"strings"
)

// Gas constant conventions. The activation energies supplied by the user
// must be in the energy units that match the configured gas constant.
const (
	RCal   = 1.987 // cal/(mol·K)
	RJoule = 8.314 // J/(mol·K)
)

// RateParameters holds one set of modified Arrhenius parameters.
type RateParameters struct {
	A  float64 // pre-exponential factor
	N  float64 // temperature exponent
	Ea float64 // activation energy [cal/mol or J/mol, matching R]
}

// K returns the rate constant k = A·T^n·exp(-Ea/(R·T)) at temperature T [K].
// No checks are performed on the inputs, so pathological values
// result in NaN or infinite output.
func (p RateParameters) K(T, R float64) float64 {
	return p.A * math.Pow(T, p.N) * math.Exp(-p.Ea/(R*T))
}

func (p RateParameters) String() string {
	return fmt.Sprintf("A=%g n=%g Ea=%g", p.A, p.N, p.Ea)
}

// Evaluate calculates the rate constant for parameters p at every
// temperature in T and stores the results in dst, which is returned.
// If dst is nil a new slice is allocated, otherwise it must be the
// same length as T.
func Evaluate(dst, T []float64, p RateParameters, R float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(T))
	}
	if len(dst) != len(T) {
		panic("arrhenius: destination length does not match temperatures")
	}
	for i, t := range T {
		dst[i] = p.K(t, R)
	}
	return dst
}

// GasConstant interprets the configured gas constant. It accepts the
// names of the two supported conventions ("cal", "cal/mol", "J", "J/mol")
// or any numeric value understood by ParseLiteral.
func GasConstant(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cal", "cal/mol":
		return RCal, nil
	case "j", "j/mol":
		return RJoule, nil
	}
	R, err := ParseLiteral(s)
	if err != nil {
		return 0, fmt.Errorf("arrhenius: invalid gas constant: %v", err)
	}
	return R, nil
}

// EnergyUnits returns the activation energy units that go along with
// gas constant R, or an empty string if R is not one of the
// supported conventions.
func EnergyUnits(R float64) string {
	switch {
	case math.Abs(R-RCal) < 1e-3:
		return "cal/mol"
	case math.Abs(R-RJoule) < 1e-3:
		return "J/mol"
	}
	return ""
}
