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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/arrhenius"
	"github.com/spatialmodel/arrhenius/render"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
)

// deck is the layout of a reaction file. Rate parameters can be given
// as TOML numbers or as strings in any format that arrhenius.ParseLiteral
// understands, such as "2.64×10^16".
type deck struct {
	Reactions []struct {
		Equation  string
		Reference string
		Kind      arrhenius.Kind
		Channels  []struct {
			A  interface{} `toml:"A"`
			N  interface{} `toml:"n"`
			Ea interface{} `toml:"Ea"`
		}
		Style arrhenius.Style
	} `toml:"reaction"`
}

// ReadReactionFile reads the reactions in the TOML file at the given
// path, which can include environment variables. For example:
//
//	[[reaction]]
//	equation = "H + O2 = OH + O"
//	reference = "GRI-Mech 3.0"
//	style = {line = "dashed", marker = "circle"}
//	  [[reaction.channels]]
//	  A = "2.64×10^16"
//	  n = -0.67
//	  Ea = 16800
func ReadReactionFile(filename string) ([]arrhenius.ReactionInput, error) {
	if filename == "" {
		return nil, fmt.Errorf("arrheniusutil: you need to specify a reaction file (for example: ReactionFile=\"reactions.toml\")")
	}
	filename = os.ExpandEnv(filename)
	var d deck
	md, err := toml.DecodeFile(filename, &d)
	if err != nil {
		return nil, fmt.Errorf("arrheniusutil: problem reading reaction file %s: %v", filename, err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return nil, fmt.Errorf("arrheniusutil: reaction file %s has unknown keys %v", filename, u)
	}

	o := make([]arrhenius.ReactionInput, len(d.Reactions))
	for i, r := range d.Reactions {
		if err := render.CheckStyle(r.Style); err != nil {
			return nil, fmt.Errorf("arrheniusutil: reaction %d (%s): %v", i+1, r.Equation, err)
		}
		in := arrhenius.ReactionInput{
			Equation:  r.Equation,
			Reference: r.Reference,
			Kind:      r.Kind,
			Style:     r.Style,
		}
		if r.Kind == arrhenius.Single && len(r.Channels) > 1 {
			return nil, fmt.Errorf("arrheniusutil: single reaction %d (%s) has %d channels; "+
				"set kind = \"duplicate\" to add them together", i+1, r.Equation, len(r.Channels))
		}
		for j, c := range r.Channels {
			var ch arrhenius.ChannelInput
			for _, f := range []struct {
				name string
				v    interface{}
				dst  *string
			}{{"A", c.A, &ch.A}, {"n", c.N, &ch.N}, {"Ea", c.Ea, &ch.Ea}} {
				if f.v == nil {
					continue
				}
				s, err := cast.ToStringE(f.v)
				if err != nil {
					return nil, fmt.Errorf("arrheniusutil: reaction %d (%s), channel %d, %s: %v",
						i+1, r.Equation, j+1, f.name, err)
				}
				*f.dst = s
			}
			in.Channels = append(in.Channels, ch)
		}
		if len(in.Channels) == 0 {
			in.Channels = arrhenius.NewReactionInput(r.Kind).Channels
		}
		o[i] = in
	}
	return o, nil
}

// CalcConfig creates a calculation configuration from a viper configuration.
func CalcConfig(cfg *viper.Viper) (arrhenius.Config, error) {
	c := arrhenius.Config{
		TMin:           cfg.GetFloat64("TMin"),
		TMax:           cfg.GetFloat64("TMax"),
		Points:         cfg.GetInt("Points"),
		YMin:           cfg.GetFloat64("YMin"),
		YMax:           cfg.GetFloat64("YMax"),
		ShowComponents: cfg.GetBool("ShowComponents"),
	}
	var err error
	if c.GasConstant, err = arrhenius.GasConstant(cfg.GetString("GasConstant")); err != nil {
		return c, err
	}
	if c.Axis, err = arrhenius.ParseAxis(cfg.GetString("XAxis")); err != nil {
		return c, err
	}
	if c.YMode, err = arrhenius.ParseYMode(cfg.GetString("YRange")); err != nil {
		return c, err
	}
	if p := strings.ToLower(strings.TrimSpace(cfg.GetString("YPreset"))); p != "" {
		r, ok := arrhenius.YPresets[p]
		if !ok {
			return c, fmt.Errorf("arrheniusutil: invalid YPreset '%s'; valid options are combustion and catalysis", p)
		}
		c.YMode, c.YMin, c.YMax = arrhenius.YManual, r.Min, r.Max
	}
	if c.Expressions, err = GetStringMapString("TableExpressions", cfg); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// RenderOptions creates plot display settings from a viper configuration.
func RenderOptions(cfg *viper.Viper) render.Options {
	o := render.DefaultOptions()
	o.ShowGrid = cfg.GetBool("ShowGrid")
	o.ShowLegend = cfg.GetBool("ShowLegend")
	o.LineWidth = cfg.GetFloat64("LineWidth")
	o.MarkerSize = cfg.GetFloat64("MarkerSize")
	o.MarkerEvery = cfg.GetInt("MarkerEvery")
	o.Width, o.Height = 10*vg.Inch, 6*vg.Inch
	return o
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("arrheniusutil: parsing %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("arrheniusutil: invalid type for variable %s: %#v", varName, i)
	}
}
