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

// Package render draws rate constant curves calculated by the arrhenius
// package.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spatialmodel/arrhenius"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options holds the display settings for a plot.
type Options struct {
	ShowGrid   bool
	ShowLegend bool

	// LineWidth is the width of reaction curves in points.
	LineWidth float64

	// MarkerSize is the diameter of markers in points.
	MarkerSize float64

	// MarkerEvery is the spacing between markers, in grid points.
	MarkerEvery int

	// Width and Height are the dimensions of the figure.
	Width, Height vg.Length
}

// DefaultOptions returns the default display settings.
func DefaultOptions() Options {
	return Options{
		ShowGrid:    true,
		ShowLegend:  true,
		LineWidth:   2,
		MarkerSize:  6,
		MarkerEvery: 10,
		Width:       10 * vg.Inch,
		Height:      6 * vg.Inch,
	}
}

// Titles and axis labels.
const (
	TitleInverse     = "Arrhenius Plot: Chemical Reaction Rate Constants"
	TitleTemperature = "Chemical Reaction Rate Constants vs Temperature"
	LabelInverse     = "1000/T (1/K)"
	LabelTemperature = "Temperature (K)"
	LabelRate        = "log10(k)"
)

// OverlayTemperatures are the temperatures [K] that are marked along the
// top of the plot when the horizontal axis is 1000/T.
var OverlayTemperatures = []float64{300, 400, 500, 700, 1000, 1500, 2000, 2500, 3000}

// Plot creates a plot of the curves in res.
func Plot(res *arrhenius.Result, o Options) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = LabelRate
	if res.Axis == arrhenius.AxisInverse {
		p.Title.Text = TitleInverse
		p.X.Label.Text = LabelInverse
	} else {
		p.Title.Text = TitleTemperature
		p.X.Label.Text = LabelTemperature
	}
	if o.ShowGrid {
		p.Add(plotter.NewGrid())
	}

	width := vg.Points(o.LineWidth)
	for i := range res.Series {
		s := &res.Series[i]
		r := res.Reactions[s.Reaction]
		c, err := reactionColor(r.Style, s.Reaction)
		if err != nil {
			return nil, err
		}

		line := draw.LineStyle{Color: c, Width: width}
		var glyph draw.GlyphStyle
		if s.Component() {
			line.Color = fade(c)
			line.Width = 0.6 * width
			line.Dashes, _ = Dashes("dotted", line.Width)
		} else {
			if line.Dashes, err = Dashes(r.Style.Line, width); err != nil {
				return nil, err
			}
			glyph.Color = c
			glyph.Radius = vg.Points(o.MarkerSize / 2)
			if glyph.Shape, err = Glyph(r.Style.Marker); err != nil {
				return nil, err
			}
		}

		for _, seg := range segments(s.X, s.LogK) {
			l, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("render: %s: %v", s.Label, err)
			}
			l.LineStyle = line
			p.Add(l)
		}
		thumbs := []plot.Thumbnailer{&plotter.Line{LineStyle: line}}
		if glyph.Shape != nil {
			sc, err := plotter.NewScatter(markerPoints(s.X, s.LogK, o.MarkerEvery))
			if err != nil {
				return nil, fmt.Errorf("render: %s: %v", s.Label, err)
			}
			sc.GlyphStyle = glyph
			p.Add(sc)
			thumbs = append(thumbs, &plotter.Scatter{GlyphStyle: glyph})
		}
		if o.ShowLegend {
			p.Legend.Add(s.Label, thumbs...)
		}
	}
	p.Legend.Top = true

	if res.Axis == arrhenius.AxisInverse {
		t := newTemperatureScale(p, res.Grid)
		p.Title.Padding = t.height()
		p.Add(t)
	}

	// Set the ranges after adding the data so they aren't widened to fit it.
	p.X.Min, p.X.Max = res.XRange.Min, res.XRange.Max
	if res.YRange != nil {
		p.Y.Min, p.Y.Max = res.YRange.Min, res.YRange.Max
	}
	return p, nil
}

// segments splits the curve into runs of consecutive finite points.
func segments(x, y []float64) []plotter.XYs {
	var (
		o   []plotter.XYs
		cur plotter.XYs
	)
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			if len(cur) > 0 {
				o = append(o, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		o = append(o, cur)
	}
	return o
}

// markerPoints returns every nth finite point of the curve.
func markerPoints(x, y []float64, n int) plotter.XYs {
	if n < 1 {
		n = 1
	}
	var o plotter.XYs
	for i := 0; i < len(x); i += n {
		if finite(x[i]) && finite(y[i]) {
			o = append(o, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WriteTo draws the curves in res and writes the image to w in
// the given format, for example "png", "svg", or "pdf".
func WriteTo(w io.Writer, res *arrhenius.Result, o Options, format string) error {
	p, err := Plot(res, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.Width, o.Height, format)
	if err != nil {
		return fmt.Errorf("render: %v", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: writing %s image: %v", format, err)
	}
	return nil
}

// Save draws the curves in res and saves the image to the named file,
// choosing the format from the file extension. The file name can
// include environment variables.
func Save(filename string, res *arrhenius.Result, o Options) error {
	filename = os.ExpandEnv(filename)
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("render: creating plot file: %v", err)
	}
	if err := WriteTo(f, res, o, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
