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

package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// temperatureScale marks temperatures along the top edge of a plot
// whose horizontal axis is 1000/T.
type temperatureScale struct {
	// T holds the temperatures [K] to mark.
	T []float64

	draw.LineStyle

	// Length is the length of the tick marks.
	Length vg.Length

	// Label is the style of the tick labels.
	Label text.Style
}

// newTemperatureScale returns a scale with a mark at every one of
// OverlayTemperatures within the range of grid, styled to match the
// horizontal axis of p.
func newTemperatureScale(p *plot.Plot, grid []float64) *temperatureScale {
	t := &temperatureScale{
		LineStyle: p.X.Tick.LineStyle,
		Length:    p.X.Tick.Length,
		Label:     p.X.Tick.Label,
	}
	t.Label.XAlign = draw.XCenter
	t.Label.YAlign = draw.YBottom
	if len(grid) == 0 {
		return t
	}
	lo := math.Min(grid[0], grid[len(grid)-1])
	hi := math.Max(grid[0], grid[len(grid)-1])
	for _, T := range OverlayTemperatures {
		if T >= lo && T <= hi {
			t.T = append(t.T, T)
		}
	}
	return t
}

func (t *temperatureScale) label(T float64) string { return fmt.Sprintf("%g K", T) }

// height returns the space needed above the data area for the labels.
func (t *temperatureScale) height() vg.Length {
	var h vg.Length
	for _, T := range t.T {
		h = vg.Length(math.Max(float64(h), float64(t.Label.Height(t.label(T)))))
	}
	return h + t.Length
}

// Plot implements the plot.Plotter interface.
func (t *temperatureScale) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	for _, T := range t.T {
		x := trX(1000 / T)
		if !c.ContainsX(x) {
			continue
		}
		c.StrokeLine2(t.LineStyle, x, c.Max.Y, x, c.Max.Y-t.Length)
		c.FillText(t.Label, vg.Point{X: x, Y: c.Max.Y + t.Length/2}, t.label(T))
	}
}
