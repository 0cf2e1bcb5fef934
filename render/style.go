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
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/arrhenius"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineStyles are the names of the available line styles.
var LineStyles = []string{"solid", "dashed", "dotted", "dashdot"}

// Markers are the names of the available marker shapes.
var Markers = []string{"none", "circle", "square", "triangle-up", "triangle-down",
	"diamond", "pentagon", "hexagon", "star", "plus", "cross", "ring"}

// Tab10 is the default color cycle. Reactions without a color of their
// own are colored by their position in the reaction list.
var Tab10 = []color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.NRGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.NRGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.NRGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	color.NRGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	color.NRGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	color.NRGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

// Dashes returns the dash pattern for the named line style, scaled to
// line width w. Solid lines have no dashes.
func Dashes(name string, w vg.Length) ([]vg.Length, error) {
	var pattern []float64
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "solid", "":
		return nil, nil
	case "dashed":
		pattern = []float64{3.7, 1.6}
	case "dotted":
		pattern = []float64{1, 1.65}
	case "dashdot":
		pattern = []float64{6.4, 1.6, 1, 1.6}
	default:
		return nil, fmt.Errorf("render: unknown line style '%s'; valid options are %s",
			name, strings.Join(LineStyles, ", "))
	}
	d := make([]vg.Length, len(pattern))
	for i, p := range pattern {
		d[i] = vg.Length(p) * w
	}
	return d, nil
}

// Glyph returns the shape of the named marker, or nil for no marker.
func Glyph(name string) (draw.GlyphDrawer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return nil, nil
	case "circle":
		return draw.CircleGlyph{}, nil
	case "square":
		return draw.BoxGlyph{}, nil
	case "triangle-up":
		return draw.PyramidGlyph{}, nil
	case "triangle-down":
		return invertedPyramidGlyph{}, nil
	case "diamond":
		return diamondGlyph{}, nil
	case "pentagon":
		return polygonGlyph{Sides: 5}, nil
	case "hexagon":
		return polygonGlyph{Sides: 6}, nil
	case "star":
		return starGlyph{}, nil
	case "plus":
		return draw.PlusGlyph{}, nil
	case "cross":
		return draw.CrossGlyph{}, nil
	case "ring":
		return draw.RingGlyph{}, nil
	}
	return nil, fmt.Errorf("render: unknown marker '%s'; valid options are %s",
		name, strings.Join(Markers, ", "))
}

// ParseColor parses a color in "#rrggbb" format.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("render: invalid color '%s'; colors must be in #rrggbb format", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("render: invalid color '%s': %v", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// CheckStyle returns an error if any of the display hints in s
// is not recognized.
func CheckStyle(s arrhenius.Style) error {
	if _, err := Dashes(s.Line, 1); err != nil {
		return err
	}
	if _, err := Glyph(s.Marker); err != nil {
		return err
	}
	if s.Color != "" {
		if _, err := ParseColor(s.Color); err != nil {
			return err
		}
	}
	return nil
}

// reactionColor returns the color of the reaction at index i in the
// reaction list.
func reactionColor(s arrhenius.Style, i int) (color.Color, error) {
	if s.Color != "" {
		return ParseColor(s.Color)
	}
	return Tab10[i%len(Tab10)], nil
}

// fade returns c with its opacity halved.
func fade(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A /= 2
	return n
}

// diamondGlyph is a filled diamond.
type diamondGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// invertedPyramidGlyph is a filled triangle pointing down.
type invertedPyramidGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (invertedPyramidGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	const sin30, cos30 = 0.5, 0.8660254037844386
	r := sty.Radius + (sty.Radius-sty.Radius*sin30)/2
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r*cos30, Y: pt.Y + r*sin30})
	p.Line(vg.Point{X: pt.X + r*cos30, Y: pt.Y + r*sin30})
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// polygonGlyph is a filled regular polygon with a vertex at the top.
type polygonGlyph struct {
	Sides int
}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (g polygonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	c.Fill(radialPath(pt, g.Sides, sty.Radius, sty.Radius))
}

// starGlyph is a filled five-pointed star.
type starGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	c.Fill(radialPath(pt, 10, sty.Radius*1.2, sty.Radius*0.5))
}

// radialPath returns a closed path through n points around pt, starting
// at the top and alternating between radii r0 and r1.
func radialPath(pt vg.Point, n int, r0, r1 vg.Length) vg.Path {
	var p vg.Path
	for i := 0; i < n; i++ {
		r := r0
		if i%2 == 1 {
			r = r1
		}
		a := math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		v := vg.Point{X: pt.X + r*vg.Length(math.Cos(a)), Y: pt.Y + r*vg.Length(math.Sin(a))}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	return p
}
