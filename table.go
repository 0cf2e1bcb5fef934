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
	"sort"

	"github.com/Knetic/govaluate"
)

// Row is one row of the summary table. Duplicate reactions have one
// row per channel followed by a row for the sum.
type Row struct {
	Equation  string
	Reference string
	Kind      Kind

	// Channel is the channel index of a duplicate reaction channel row,
	// or -1 for single reactions and duplicate reaction sums.
	Channel int

	// Params is nil for duplicate reaction sum rows.
	Params *RateParameters

	Style Style

	// K holds the rate constants at ReferenceTemperatures.
	K [3]float64

	// Extra holds the values of the additional table columns.
	Extra []float64
}

// Type returns the description of the row type in the table.
func (r *Row) Type() string {
	switch {
	case r.Kind == Single:
		return "Single"
	case r.Channel >= 0:
		return fmt.Sprintf("Duplicate-Channel %d", r.Channel+1)
	default:
		return "Duplicate-Sum"
	}
}

// Table is the summary of rate constants at ReferenceTemperatures.
type Table struct {
	// EnergyUnits are the activation energy units, which depend on
	// the gas constant.
	EnergyUnits string

	// Columns are the names of the additional columns in each row.
	Columns []string

	Rows []Row
}

// tableFuncs are the functions available to additional table columns.
var tableFuncs = map[string]govaluate.ExpressionFunction{
	"log10": unaryFunc("log10", math.Log10),
	"exp":   unaryFunc("exp", math.Exp),
}

func unaryFunc(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("arrhenius: got %d arguments for function '%s', but needs 1", len(arg), name)
		}
		v, ok := arg[0].(float64)
		if !ok {
			return nil, fmt.Errorf("arrhenius: argument to '%s' must be a number but is %v", name, arg[0])
		}
		return f(v), nil
	}
}

// NewTable creates the summary table for the given reactions and gas
// constant R.
//
// expressions specifies additional columns, keyed by column name, which
// are calculated for every row from the variables A, n, Ea, R, k300,
// k1000, and k2000 and the functions log10(x) and exp(x).
// A, n, and Ea are NaN in duplicate reaction sum rows.
func NewTable(reactions []*Reaction, R float64, expressions map[string]string) (*Table, error) {
	t := &Table{EnergyUnits: EnergyUnits(R)}

	names := make([]string, 0, len(expressions))
	for name := range expressions {
		names = append(names, name)
	}
	sort.Strings(names)
	exprs := make([]*govaluate.EvaluableExpression, len(names))
	for i, name := range names {
		e, err := govaluate.NewEvaluableExpressionWithFunctions(expressions[name], tableFuncs)
		if err != nil {
			return nil, fmt.Errorf("arrhenius: parsing table column %s: %v", name, err)
		}
		exprs[i] = e
	}
	t.Columns = names

	for _, r := range reactions {
		if r.Kind == Single {
			p := r.Channels[0]
			t.Rows = append(t.Rows, Row{
				Equation:  r.Equation,
				Reference: r.Reference,
				Kind:      Single,
				Channel:   -1,
				Params:    &p,
				Style:     r.Style,
				K:         kRef(p, R),
			})
			continue
		}
		var sum [3]float64
		for j := range r.Channels {
			p := r.Channels[j]
			k := kRef(p, R)
			t.Rows = append(t.Rows, Row{
				Equation:  r.Equation,
				Reference: r.Reference,
				Kind:      Duplicate,
				Channel:   j,
				Params:    &p,
				Style:     r.Style,
				K:         k,
			})
		}
		for i, T := range ReferenceTemperatures {
			sum[i], _ = aggregateAt(r.Channels, T, R)
		}
		t.Rows = append(t.Rows, Row{
			Equation:  r.Equation,
			Reference: r.Reference,
			Kind:      Duplicate,
			Channel:   -1,
			Style:     r.Style,
			K:         sum,
		})
	}

	if len(exprs) == 0 {
		return t, nil
	}
	for i := range t.Rows {
		row := &t.Rows[i]
		vars := map[string]interface{}{
			"A":     math.NaN(),
			"n":     math.NaN(),
			"Ea":    math.NaN(),
			"R":     R,
			"k300":  row.K[0],
			"k1000": row.K[1],
			"k2000": row.K[2],
		}
		if row.Params != nil {
			vars["A"], vars["n"], vars["Ea"] = row.Params.A, row.Params.N, row.Params.Ea
		}
		row.Extra = make([]float64, len(exprs))
		for j, e := range exprs {
			v, err := e.Evaluate(vars)
			if err != nil {
				return nil, fmt.Errorf("arrhenius: calculating table column %s for %s: %v", names[j], row.Equation, err)
			}
			f, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("arrhenius: table column %s is not a number for %s: %v", names[j], row.Equation, v)
			}
			row.Extra[j] = f
		}
	}
	return t, nil
}

func kRef(p RateParameters, R float64) [3]float64 {
	var k [3]float64
	for i, T := range ReferenceTemperatures {
		k[i] = p.K(T, R)
	}
	return k
}

// Header returns the column names of the table.
func (t *Table) Header() []string {
	ea := "Ea"
	if t.EnergyUnits != "" {
		ea += " (" + t.EnergyUnits + ")"
	}
	h := []string{"Equation", "Type", "A", "n", ea, "Reference", "Line style", "Marker"}
	for _, T := range ReferenceTemperatures {
		h = append(h, fmt.Sprintf("k @ %gK", T))
	}
	return append(h, t.Columns...)
}

// Records returns the formatted table rows, in the same column order
// as Header.
func (t *Table) Records() [][]string {
	o := make([][]string, len(t.Rows))
	for i := range t.Rows {
		o[i] = t.Rows[i].Strings()
	}
	return o
}

// Strings returns the formatted values of the row.
func (r *Row) Strings() []string {
	a, n, ea := "-", "-", "-"
	if r.Params != nil {
		a = fmt.Sprintf("%.2e", r.Params.A)
		n = fmt.Sprintf("%.3f", r.Params.N)
		ea = fmt.Sprintf("%.0f", r.Params.Ea)
	}
	ref := r.Reference
	if ref == "" {
		ref = "N/A"
	}
	line, marker := "-", "-"
	if r.Channel < 0 {
		line, marker = r.Style.Line, r.Style.Marker
		if line == "" {
			line = "solid"
		}
		if marker == "" {
			marker = "none"
		}
	}
	s := []string{r.Equation, r.Type(), a, n, ea, ref, line, marker}
	for _, k := range r.K {
		s = append(s, fmt.Sprintf("%.2e", k))
	}
	for _, v := range r.Extra {
		s = append(s, fmt.Sprintf("%.4g", v))
	}
	return s
}
