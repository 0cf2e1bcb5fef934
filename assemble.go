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

// MinTemperature is the lowest temperature [K] allowed at either end
// of the temperature sweep.
const MinTemperature = 100.

// DefaultPoints is the default number of temperatures in the sweep.
const DefaultPoints = 500

// ReferenceTemperatures are the temperatures [K] at which the summary
// table reports rate constants, regardless of the sweep range.
var ReferenceTemperatures = [3]float64{300, 1000, 2000}

// YMode specifies how the vertical axis range is chosen.
type YMode int

// Available vertical range modes.
const (
	// YAuto fits the range to the data with a 10% margin.
	YAuto YMode = iota

	// YManual uses the configured range as is.
	YManual
)

func (m YMode) String() string {
	switch m {
	case YAuto:
		return "auto"
	case YManual:
		return "manual"
	}
	return "unknown"
}

// ParseYMode returns the vertical range mode with the given name.
func ParseYMode(s string) (YMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return YAuto, nil
	case "manual":
		return YManual, nil
	}
	return YAuto, fmt.Errorf("arrhenius: invalid y range mode '%s'; valid options are auto and manual", s)
}

// YPresets are named manual ranges of log10(k) for common applications.
var YPresets = map[string]Range{
	"combustion": {Min: -10, Max: 20},
	"catalysis":  {Min: -20, Max: 10},
}

// Config holds the settings for a calculation.
type Config struct {
	// TMin and TMax are the ends of the temperature sweep [K].
	TMin, TMax float64

	// Points is the number of temperatures in the sweep.
	Points int

	// GasConstant is the gas constant R. Its units determine the units
	// of the activation energies.
	GasConstant float64

	// Axis is the horizontal axis representation.
	Axis Axis

	// YMode chooses between an automatic and a manual vertical range.
	// YMin and YMax are only used in manual mode.
	YMode      YMode
	YMin, YMax float64

	// ShowComponents specifies whether the individual channels of
	// duplicate reactions are included as separate curves.
	ShowComponents bool

	// Expressions holds additional summary table columns, keyed by
	// column name. See NewTable for the available variables.
	Expressions map[string]string
}

// DefaultConfig returns the default calculation settings.
func DefaultConfig() Config {
	return Config{
		TMin:        300,
		TMax:        2000,
		Points:      DefaultPoints,
		GasConstant: RCal,
		Axis:        AxisTemperature,
		YMode:       YAuto,
		YMin:        -20,
		YMax:        20,
	}
}

// Validate checks that the configuration can be used for a calculation.
// It does not require TMin < TMax, or YMin < YMax in manual mode.
func (c *Config) Validate() error {
	if !(c.TMin >= MinTemperature) || !(c.TMax >= MinTemperature) {
		return fmt.Errorf("arrhenius: the temperature range [%g, %g] must be at least %g K at both ends",
			c.TMin, c.TMax, MinTemperature)
	}
	if math.IsInf(c.TMin, 0) || math.IsInf(c.TMax, 0) {
		return fmt.Errorf("arrhenius: the temperature range [%g, %g] must be finite", c.TMin, c.TMax)
	}
	if c.Points < 2 {
		return fmt.Errorf("arrhenius: the number of temperature points must be at least 2 but is %d", c.Points)
	}
	if c.GasConstant == 0 || math.IsNaN(c.GasConstant) || math.IsInf(c.GasConstant, 0) {
		return fmt.Errorf("arrhenius: invalid gas constant %g", c.GasConstant)
	}
	return nil
}

// Series is a curve of log10(k) against the horizontal axis coordinate.
type Series struct {
	// Label is the legend entry for the curve.
	Label string

	// Reaction is the index of the reaction in Result.Reactions.
	Reaction int

	// Channel is the index of the duplicate reaction channel that this
	// curve represents, or -1 for the total rate constant.
	Channel int

	// X and LogK hold the curve coordinates, aligned with the
	// temperature grid. LogK may contain NaN or infinite values.
	X, LogK []float64
}

// Component returns whether s is the curve of a single duplicate
// reaction channel.
func (s *Series) Component() bool { return s.Channel >= 0 }

// Result holds the calculated curves and summary table.
type Result struct {
	// Reactions are the reactions that were included in the calculation.
	Reactions []*Reaction

	// Grid holds the temperatures [K] of the sweep.
	Grid []float64

	// Axis is the horizontal axis representation used for the series.
	Axis Axis

	// Series holds one total curve per reaction, each followed by
	// the curves of its channels when requested.
	Series []Series

	// XRange is the horizontal axis range.
	XRange Range

	// YRange is the vertical axis range. It is nil when the range
	// should be left to the renderer, which happens in automatic mode
	// when there are no finite values.
	YRange *Range

	// Table is the summary table at the reference temperatures.
	Table *Table

	// Errors holds problems with individual reactions. These reactions
	// were left out of the calculation.
	Errors []error
}

// Empty returns whether there is nothing to show.
func (r *Result) Empty() bool { return len(r.Reactions) == 0 }

// Assemble calculates rate constant curves for the given reactions over
// the temperature sweep specified by cfg, along with the axis ranges and
// the summary table. It recalculates everything from scratch each time.
func Assemble(reactions []*Reaction, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	T := TemperatureGrid(cfg.TMin, cfg.TMax, cfg.Points)
	res := &Result{
		Reactions: reactions,
		Grid:      T,
		Axis:      cfg.Axis,
		XRange:    cfg.Axis.Range(cfg.TMin, cfg.TMax),
	}
	x := cfg.Axis.Xs(T)
	for i, r := range reactions {
		total, components := Aggregate(r.Channels, T, cfg.GasConstant)
		res.Series = append(res.Series, Series{
			Label:    r.Label(),
			Reaction: i,
			Channel:  -1,
			X:        x,
			LogK:     log10(total),
		})
		if r.Kind != Duplicate || !cfg.ShowComponents {
			continue
		}
		for j, k := range components {
			res.Series = append(res.Series, Series{
				Label:    fmt.Sprintf("  └─ Channel %d", j+1),
				Reaction: i,
				Channel:  j,
				X:        x,
				LogK:     log10(k),
			})
		}
	}

	switch cfg.YMode {
	case YManual:
		res.YRange = &Range{Min: cfg.YMin, Max: cfg.YMax}
	default:
		vals := make([][]float64, len(res.Series))
		for i, s := range res.Series {
			vals[i] = s.LogK
		}
		res.YRange = AutoRange(vals...)
	}

	var err error
	res.Table, err = NewTable(reactions, cfg.GasConstant, cfg.Expressions)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AutoRange returns the range spanned by the finite values in vals,
// widened by 10% of the span at each end. It returns nil if there are
// no finite values.
func AutoRange(vals ...[]float64) *Range {
	min, max := math.Inf(1), math.Inf(-1)
	for _, vs := range vals {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if min > max {
		return nil
	}
	margin := (max - min) * 0.1
	return &Range{Min: min - margin, Max: max + margin}
}

func log10(k []float64) []float64 {
	o := make([]float64, len(k))
	for i, v := range k {
		o[i] = math.Log10(v)
	}
	return o
}
