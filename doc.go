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

// Package arrhenius calculates and compares chemical reaction rate
// constants following the modified Arrhenius expression
//
//	k = A·T^n·exp(-Ea/(R·T))
//
// for single reactions and for duplicate reactions, whose rate constant
// is the sum over several independent channels. Assemble turns a list of
// reactions into log10(k) curves over a temperature sweep, axis ranges,
// and a summary table at fixed reference temperatures.
package arrhenius

// Version is the version of this software.
const Version = "1.0.0"
