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
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func testSession() (*Session, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s, err := NewSession(
		ReactionInput{
			Equation:  "H + O2 = OH + O",
			Reference: "GRI-Mech 3.0",
			Kind:      Single,
			Channels:  []ChannelInput{{A: "2.64e16", N: "-0.67", Ea: "16800"}},
		},
		ReactionInput{
			Equation: "OH + H2O2 = HO2 + H2O",
			Kind:     Duplicate,
			Channels: []ChannelInput{
				{A: "5.41e4", N: "2.16", Ea: "-3597"},
				{A: "1.73e5", N: "2.19", Ea: "18010"},
			},
		},
	)
	if err != nil {
		panic(err)
	}
	s.Log = log
	return s, hook
}

func TestSessionCompute(t *testing.T) {
	s, _ := testSession()
	cfg := DefaultConfig()
	cfg.Points = 20
	res, err := s.Compute(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Reactions) != 2 || len(res.Series) != 2 || len(res.Errors) != 0 {
		t.Errorf("have %d reactions, %d series and %d errors", len(res.Reactions), len(res.Series), len(res.Errors))
	}
}

func TestSessionEdit(t *testing.T) {
	s, hook := testSession()

	i := s.AddEmpty(Duplicate)
	if i != 2 || s.Len() != 3 {
		t.Fatalf("index %d, length %d", i, s.Len())
	}
	if e := hook.LastEntry(); e == nil || e.Message != "added reaction" || e.Data["index"] != 2 {
		t.Errorf("log entry: %+v", e)
	}
	r, err := s.Reaction(i)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Channels) != 2 {
		t.Errorf("have %d channels, want 2", len(r.Channels))
	}

	// Copies returned by the session don't affect it.
	r.Channels[0].A = "1e10"
	if r2, _ := s.Reaction(i); r2.Channels[0].A != "" {
		t.Error("session was modified through a copy")
	}

	j, err := s.AddChannel(i)
	if err != nil {
		t.Fatal(err)
	}
	if j != 2 {
		t.Errorf("channel index %d, want 2", j)
	}
	if _, err := s.AddChannel(0); err == nil {
		t.Error("adding a channel to a single reaction should be an error")
	}
	if err := s.RemoveChannel(i, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveChannel(0, 0); err == nil {
		t.Error("removing the only channel should be an error")
	}
	if err := s.RemoveChannel(i, 5); err == nil {
		t.Error("removing a missing channel should be an error")
	}

	r.Equation = "A = B"
	r.Channels = []ChannelInput{{A: "1", N: "0", Ea: "0"}, {A: "2", N: "0", Ea: "0"}}
	if err := s.Update(i, r); err != nil {
		t.Fatal(err)
	}
	r.Kind = Single
	if err := s.Update(i, r); err == nil {
		t.Error("a single reaction with two channels should be an error")
	}
	r.Channels = nil
	if err := s.Update(i, r); err == nil {
		t.Error("a reaction without channels should be an error")
	}
	if err := s.Update(7, r); err == nil {
		t.Error("updating a missing reaction should be an error")
	}

	res, err := s.Compute(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Reactions) != 3 || res.Reactions[2].Equation != "A = B" {
		t.Errorf("have %d reactions", len(res.Reactions))
	}

	if err := s.Remove(0); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("length %d, want 2", s.Len())
	}
	if r, _ := s.Reaction(0); r.Equation != "OH + H2O2 = HO2 + H2O" {
		t.Errorf("first reaction is %s", r.Equation)
	}
	if err := s.Remove(-1); err == nil {
		t.Error("removing a missing reaction should be an error")
	}
}

func TestSessionComputeErrors(t *testing.T) {
	s, hook := testSession()
	if _, err := s.Add(ReactionInput{
		Equation: "C = D",
		Channels: []ChannelInput{{A: "1.5×", N: "0", Ea: "0"}},
	}); err != nil {
		t.Fatal(err)
	}
	res, err := s.Compute(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Reactions) != 2 || len(res.Errors) != 1 {
		t.Fatalf("have %d reactions and %d errors", len(res.Reactions), len(res.Errors))
	}
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Error("the rejected reaction should be logged")
	}
}

func TestSessionComputeEmpty(t *testing.T) {
	log, hook := test.NewNullLogger()
	s, err := NewSession()
	if err != nil {
		t.Fatal(err)
	}
	s.Log = log
	s.AddEmpty(Single)
	res, err := s.Compute(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Empty() {
		t.Error("result should be empty")
	}
	if e := hook.LastEntry(); e == nil || e.Level != logrus.InfoLevel {
		t.Errorf("log entry: %+v", e)
	}
}

func TestSessionSingleChannels(t *testing.T) {
	two := []ChannelInput{{A: "1e10", N: "0", Ea: "0"}, {A: "1e10", N: "0", Ea: "0"}}
	s, _ := testSession()
	if _, err := s.Add(ReactionInput{Equation: "A = B", Kind: Single, Channels: two}); err == nil {
		t.Error("adding a single reaction with two channels should be an error")
	}
	if s.Len() != 2 {
		t.Errorf("length %d, want 2", s.Len())
	}
	if _, err := NewSession(ReactionInput{Equation: "A = B", Kind: Single, Channels: two}); err == nil {
		t.Error("a session with a two-channel single reaction should be an error")
	}

	// The curve and the table agree for the reactions that are accepted.
	i, err := s.Add(ReactionInput{Equation: "A = B", Kind: Duplicate, Channels: two})
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.TMin, cfg.TMax = 300, 1000
	cfg.Points = 2
	res, err := s.Compute(cfg)
	if err != nil {
		t.Fatal(err)
	}
	last := res.Table.Rows[len(res.Table.Rows)-1]
	if res.Series[i].LogK[0] != math.Log10(last.K[0]) || last.K[0] != 2e10 {
		t.Errorf("curve %g and table %g disagree", res.Series[i].LogK[0], last.K[0])
	}
}
