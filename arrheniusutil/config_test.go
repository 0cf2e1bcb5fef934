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

package arrheniusutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
	"github.com/spatialmodel/arrhenius"
	"github.com/spf13/viper"
)

const testDeck = `
[[reaction]]
equation = "H + O2 = OH + O"
reference = "GRI-Mech 3.0"
style = {line = "dashed", marker = "circle"}
  [[reaction.channels]]
  A = "2.64×10^16"
  n = -0.67
  Ea = 16800

[[reaction]]
equation = "OH + H2O2 = HO2 + H2O"
kind = "duplicate"
  [[reaction.channels]]
  A = 5.41e4
  n = 2.16
  Ea = -3597
  [[reaction.channels]]
  A = "1.73e5"
  n = "2.19"
  Ea = "18010"

[[reaction]]
equation = "O + H2 = H + OH"
kind = "duplicate"
`

func writeDeck(t *testing.T, deck string) string {
	f := filepath.Join(t.TempDir(), "reactions.toml")
	if err := os.WriteFile(f, []byte(deck), 0644); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestReadReactionFile(t *testing.T) {
	f := writeDeck(t, testDeck)
	t.Setenv("ARRHENIUS_TEST_DECK", f)
	have, err := ReadReactionFile("$ARRHENIUS_TEST_DECK")
	if err != nil {
		t.Fatal(err)
	}
	want := []arrhenius.ReactionInput{
		{
			Equation:  "H + O2 = OH + O",
			Reference: "GRI-Mech 3.0",
			Kind:      arrhenius.Single,
			Channels:  []arrhenius.ChannelInput{{A: "2.64×10^16", N: "-0.67", Ea: "16800"}},
			Style:     arrhenius.Style{Line: "dashed", Marker: "circle"},
		},
		{
			Equation: "OH + H2O2 = HO2 + H2O",
			Kind:     arrhenius.Duplicate,
			Channels: []arrhenius.ChannelInput{
				{A: "54100", N: "2.16", Ea: "-3597"},
				{A: "1.73e5", N: "2.19", Ea: "18010"},
			},
		},
		{
			Equation: "O + H2 = H + OH",
			Kind:     arrhenius.Duplicate,
			Channels: make([]arrhenius.ChannelInput, 2),
		},
	}
	if diff := pretty.Diff(have, want); len(diff) != 0 {
		t.Error(diff)
	}
}

func TestReadReactionFileErrors(t *testing.T) {
	for name, deck := range map[string]string{
		"unknown key": `
[[reaction]]
equation = "A = B"
colour = "red"
`,
		"bad style": `
[[reaction]]
equation = "A = B"
style = {marker = "hexagram"}
`,
		"bad kind": `
[[reaction]]
equation = "A = B"
kind = "triple"
`,
		"single with two channels": `
[[reaction]]
equation = "A = B"
  [[reaction.channels]]
  A = 1
  [[reaction.channels]]
  A = 2
`,
		"syntax": `[[reaction]`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadReactionFile(writeDeck(t, deck)); err == nil {
				t.Error("should be an error")
			}
		})
	}
	if _, err := ReadReactionFile(""); err == nil {
		t.Error("a missing file name should be an error")
	}
}

// newTestConfig returns a configuration holding the default value
// of every option.
func newTestConfig() *viper.Viper {
	v := viper.New()
	for _, o := range options {
		v.SetDefault(o.name, o.defaultVal)
	}
	return v
}

func TestCalcConfig(t *testing.T) {
	c, err := CalcConfig(newTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := arrhenius.DefaultConfig()
	want.Expressions = map[string]string{}
	if diff := pretty.Diff(c, want); len(diff) != 0 {
		t.Error(diff)
	}

	v := newTestConfig()
	v.Set("GasConstant", "J")
	v.Set("XAxis", "1000/T")
	v.Set("YPreset", "Catalysis")
	v.Set("ShowComponents", true)
	v.Set("TableExpressions", `{"Ea/R": "Ea/R"}`)
	c, err = CalcConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.GasConstant != arrhenius.RJoule || c.Axis != arrhenius.AxisInverse || !c.ShowComponents {
		t.Errorf("have %+v", c)
	}
	if c.YMode != arrhenius.YManual || c.YMin != -20 || c.YMax != 10 {
		t.Errorf("y range: have %v [%g, %g]", c.YMode, c.YMin, c.YMax)
	}
	if c.Expressions["Ea/R"] != "Ea/R" {
		t.Errorf("expressions: %v", c.Expressions)
	}
}

func TestCalcConfigErrors(t *testing.T) {
	for name, f := range map[string]func(*viper.Viper){
		"gas constant": func(v *viper.Viper) { v.Set("GasConstant", "kcal") },
		"axis":         func(v *viper.Viper) { v.Set("XAxis", "log") },
		"y range":      func(v *viper.Viper) { v.Set("YRange", "fixed") },
		"preset":       func(v *viper.Viper) { v.Set("YPreset", "atmospheric") },
		"expressions":  func(v *viper.Viper) { v.Set("TableExpressions", "{") },
		"temperature":  func(v *viper.Viper) { v.Set("TMin", 50.0) },
	} {
		t.Run(name, func(t *testing.T) {
			v := newTestConfig()
			f(v)
			if _, err := CalcConfig(v); err == nil {
				t.Error("should be an error")
			}
		})
	}
}

func TestGetStringMapString(t *testing.T) {
	v := viper.New()
	v.Set("a", map[string]interface{}{"x": "1", "y": 2})
	v.Set("b", `{"x": "1"}`)
	v.Set("c", "")
	v.Set("d", 3)

	m, err := GetStringMapString("a", v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(m, map[string]string{"x": "1", "y": "2"}); len(diff) != 0 {
		t.Error(diff)
	}
	m, err = GetStringMapString("b", v)
	if err != nil {
		t.Fatal(err)
	}
	if m["x"] != "1" {
		t.Errorf("have %v", m)
	}
	if m, err := GetStringMapString("c", v); err != nil || m != nil {
		t.Errorf("have %v, %v", m, err)
	}
	if m, err := GetStringMapString("missing", v); err != nil || m != nil {
		t.Errorf("have %v, %v", m, err)
	}
	if _, err := GetStringMapString("d", v); err == nil {
		t.Error("should be an error")
	}
}

func TestRenderOptions(t *testing.T) {
	v := newTestConfig()
	v.Set("ShowGrid", false)
	v.Set("MarkerEvery", 5)
	o := RenderOptions(v)
	if o.ShowGrid || !o.ShowLegend || o.MarkerEvery != 5 || o.LineWidth != 2 || o.MarkerSize != 6 {
		t.Errorf("have %+v", o)
	}
}
