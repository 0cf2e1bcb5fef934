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
	"encoding/json"
	"errors"
	"testing"

	"github.com/kr/pretty"
)

func TestReactionInputParse(t *testing.T) {
	in := ReactionInput{
		Equation:  "  H + O2 = OH + O ",
		Reference: "GRI-Mech 3.0",
		Channels:  []ChannelInput{{A: "2.64×10^16", N: "-0.67", Ea: "16800"}},
	}
	r, err := in.Parse(0)
	if err != nil {
		t.Fatal(err)
	}
	want := &Reaction{
		Equation:  "H + O2 = OH + O",
		Reference: "GRI-Mech 3.0",
		Kind:      Single,
		Channels:  []RateParameters{{A: 2.64e16, N: -0.67, Ea: 16800}},
	}
	if diff := pretty.Diff(r, want); len(diff) != 0 {
		t.Error(diff)
	}
}

func TestReactionInputNotReady(t *testing.T) {
	for name, in := range map[string]ReactionInput{
		"no equation":      {Equation: "  ", Channels: []ChannelInput{{A: "1", N: "0", Ea: "0"}}},
		"no channels":      {Equation: "A = B"},
		"missing field":    {Equation: "A = B", Channels: []ChannelInput{{A: "1", N: "0"}}},
		"blank parameters": {Equation: "A = B", Channels: []ChannelInput{{A: " ", N: " ", Ea: " "}}},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := in.Parse(0)
			if err != nil {
				t.Fatal(err)
			}
			if r != nil {
				t.Errorf("have %+v, want nil", r)
			}
		})
	}
}

func TestReactionInputSkipIncompleteChannel(t *testing.T) {
	in := ReactionInput{
		Equation: "OH + H2O2 = HO2 + H2O",
		Kind:     Duplicate,
		Channels: []ChannelInput{
			{A: "5.41e4", N: "2.16", Ea: "-3597"},
			{A: "1.73e5", N: "2.19"},
		},
	}
	r, err := in.Parse(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Channels) != 1 {
		t.Fatalf("have %d channels, want 1", len(r.Channels))
	}
	if r.Label() != "OH + H2O2 = HO2 + H2O (sum of 1 channels)" {
		t.Errorf("label: %s", r.Label())
	}
}

func TestReactionInputBadField(t *testing.T) {
	in := ReactionInput{
		Equation: "OH + H2O2 = HO2 + H2O",
		Kind:     Duplicate,
		Channels: []ChannelInput{
			{A: "5.41e4", N: "2.16", Ea: "-3597"},
			{A: "1.73e5", N: "two", Ea: "18010"},
		},
	}
	r, err := in.Parse(4)
	if r != nil {
		t.Errorf("reaction should be rejected but is %+v", r)
	}
	var rErr *ReactionError
	if !errors.As(err, &rErr) {
		t.Fatalf("have error %v, want *ReactionError", err)
	}
	if rErr.Index != 4 || rErr.Channel != 1 || rErr.Field != "n" {
		t.Errorf("have %+v", rErr)
	}
	var lErr *LiteralError
	if !errors.As(err, &lErr) || lErr.Text != "two" {
		t.Errorf("have %v, want *LiteralError", err)
	}
	want := "arrhenius: reaction 5 (OH + H2O2 = HO2 + H2O), channel 2, n: arrhenius: unable to parse numeric value \"two\""
	if err.Error() != want {
		t.Errorf("have %q, want %q", err.Error(), want)
	}
}

func TestReactionInputSingleChannels(t *testing.T) {
	in := ReactionInput{
		Equation: "A = B",
		Kind:     Single,
		Channels: []ChannelInput{
			{A: "1e10", N: "0", Ea: "0"},
			{A: "", N: "0", Ea: ""},
			{A: "1e10", N: "0", Ea: "0"},
		},
	}
	r, err := in.Parse(0)
	if r != nil {
		t.Errorf("reaction should be rejected but is %+v", r)
	}
	var rErr *ReactionError
	if !errors.As(err, &rErr) || rErr.Channel != 2 || !errors.Is(err, ErrSingleChannels) {
		t.Fatalf("have error %v", err)
	}

	// An incomplete second channel doesn't count.
	in.Channels = in.Channels[:2]
	if r, err = in.Parse(0); err != nil || r == nil || len(r.Channels) != 1 {
		t.Errorf("have %+v, %v", r, err)
	}
}

func TestParseReactions(t *testing.T) {
	inputs := []ReactionInput{
		{Equation: "A = B", Channels: []ChannelInput{{A: "1e10", N: "0", Ea: "1000"}}},
		{Equation: "", Channels: []ChannelInput{{A: "1e10", N: "0", Ea: "1000"}}},
		{Equation: "C = D", Channels: []ChannelInput{{A: "x", N: "0", Ea: "1000"}}},
		{Equation: "E = F", Channels: []ChannelInput{{A: "2e10", N: "1", Ea: "0"}}},
	}
	reactions, errs := ParseReactions(inputs)
	if len(reactions) != 2 || reactions[0].Equation != "A = B" || reactions[1].Equation != "E = F" {
		t.Errorf("have %# v", pretty.Formatter(reactions))
	}
	if len(errs) != 1 {
		t.Fatalf("have %d errors, want 1", len(errs))
	}
	var rErr *ReactionError
	if !errors.As(errs[0], &rErr) || rErr.Index != 2 {
		t.Errorf("have %v", errs[0])
	}
}

func TestReactionLabel(t *testing.T) {
	r := Reaction{Equation: "A = B", Kind: Duplicate, Channels: make([]RateParameters, 3), Reference: "Baulch 2005"}
	if l := r.Label(); l != "A = B (sum of 3 channels) [Baulch 2005]" {
		t.Errorf("label: %s", l)
	}
	r = Reaction{Equation: "A = B", Channels: make([]RateParameters, 1)}
	if l := r.Label(); l != "A = B" {
		t.Errorf("label: %s", l)
	}
}

func TestNewReactionInput(t *testing.T) {
	if n := len(NewReactionInput(Single).Channels); n != 1 {
		t.Errorf("single: have %d channels, want 1", n)
	}
	if n := len(NewReactionInput(Duplicate).Channels); n != 2 {
		t.Errorf("duplicate: have %d channels, want 2", n)
	}
}

func TestKindJSON(t *testing.T) {
	var in ReactionInput
	if err := json.Unmarshal([]byte(`{"equation":"A = B","kind":"duplicate"}`), &in); err != nil {
		t.Fatal(err)
	}
	if in.Kind != Duplicate {
		t.Errorf("have %v, want Duplicate", in.Kind)
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["kind"] != "duplicate" {
		t.Errorf("have %v, want duplicate", m["kind"])
	}
	if err := json.Unmarshal([]byte(`{"kind":"triple"}`), &in); err == nil {
		t.Error("should be an error")
	}
}
