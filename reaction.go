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
	"errors"
	"fmt"
	"strings"
)

// Kind specifies whether a reaction has a single set of rate parameters
// or several parallel channels whose rate constants add.
type Kind int

// Available reaction kinds.
const (
	Single Kind = iota
	Duplicate
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "Single"
	case Duplicate:
		return "Duplicate"
	}
	return "Unknown"
}

// ParseKind returns the Kind with the given name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return Single, nil
	case "duplicate", "dup":
		return Duplicate, nil
	}
	return Single, fmt.Errorf("arrhenius: invalid reaction kind '%s'; valid options are single and duplicate", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	var err error
	*k, err = ParseKind(string(b))
	return err
}

// Style holds display hints for a reaction. They have no effect
// on the calculated values.
type Style struct {
	Line   string `json:"line,omitempty" toml:"line"`     // line style, e.g. "dashed"
	Marker string `json:"marker,omitempty" toml:"marker"` // marker shape, e.g. "circle"
	Color  string `json:"color,omitempty" toml:"color"`   // override color, "#rrggbb"
}

// ChannelInput holds the rate parameters of one channel as entered
// by the user.
type ChannelInput struct {
	A  string `json:"A" toml:"A"`
	N  string `json:"n" toml:"n"`
	Ea string `json:"Ea" toml:"Ea"`
}

func (c ChannelInput) complete() bool {
	return strings.TrimSpace(c.A) != "" && strings.TrimSpace(c.N) != "" && strings.TrimSpace(c.Ea) != ""
}

// ReactionInput is a reaction as entered by the user. None of its
// fields have been checked.
type ReactionInput struct {
	Equation  string         `json:"equation" toml:"equation"`
	Reference string         `json:"reference,omitempty" toml:"reference"`
	Kind      Kind           `json:"kind" toml:"kind"`
	Channels  []ChannelInput `json:"channels" toml:"channels"`
	Style     Style          `json:"style" toml:"style"`
}

// NewReactionInput returns an empty reaction of the given kind: single
// reactions start with one channel and duplicate reactions with two.
func NewReactionInput(k Kind) ReactionInput {
	n := 1
	if k == Duplicate {
		n = 2
	}
	return ReactionInput{
		Kind:     k,
		Channels: make([]ChannelInput, n),
		Style:    Style{Line: "solid", Marker: "none"},
	}
}

// Reaction is a reaction whose rate parameters have been successfully
// parsed. Channels always holds at least one element.
type Reaction struct {
	Equation  string
	Reference string
	Kind      Kind
	Channels  []RateParameters
	Style     Style
}

// Label returns the legend label for the reaction: the equation, a note
// on the number of channels for duplicate reactions, and the reference
// in brackets if there is one.
func (r *Reaction) Label() string {
	label := r.Equation
	if r.Kind == Duplicate {
		label += fmt.Sprintf(" (sum of %d channels)", len(r.Channels))
	}
	if r.Reference != "" {
		label += " [" + r.Reference + "]"
	}
	return label
}

// ReactionError reports a field of a reaction that could not be parsed.
type ReactionError struct {
	Index    int    // position of the reaction in the input list
	Equation string // reaction label
	Channel  int    // channel index
	Field    string // "A", "n", "Ea", or "kind"
	Err      error
}

func (e *ReactionError) Error() string {
	return fmt.Sprintf("arrhenius: reaction %d (%s), channel %d, %s: %v",
		e.Index+1, e.Equation, e.Channel+1, e.Field, e.Err)
}

func (e *ReactionError) Unwrap() error { return e.Err }

// ErrSingleChannels is wrapped in a *ReactionError when a single
// reaction has more than one complete set of rate parameters.
var ErrSingleChannels = errors.New("arrhenius: single reactions can only have one set of rate parameters")

// Parse checks and parses the reaction input. It returns a nil Reaction
// and a nil error if the reaction is not finished being entered: it has
// no equation, or none of its channels has all three parameters filled in.
// Channels with missing parameters are skipped. If any filled-in parameter
// can't be parsed, or a single reaction has more than one complete
// channel, the whole reaction is rejected with a *ReactionError.
// index is the position of the reaction in its list and is only used
// for error reporting.
func (in ReactionInput) Parse(index int) (*Reaction, error) {
	equation := strings.TrimSpace(in.Equation)
	if equation == "" {
		return nil, nil
	}
	r := &Reaction{
		Equation:  equation,
		Reference: strings.TrimSpace(in.Reference),
		Kind:      in.Kind,
		Style:     in.Style,
	}
	for j, c := range in.Channels {
		if !c.complete() {
			continue
		}
		if r.Kind == Single && len(r.Channels) > 0 {
			return nil, &ReactionError{Index: index, Equation: equation, Channel: j, Field: "kind", Err: ErrSingleChannels}
		}
		var p RateParameters
		for _, f := range []struct {
			name string
			text string
			v    *float64
		}{
			{name: "A", text: c.A, v: &p.A},
			{name: "n", text: c.N, v: &p.N},
			{name: "Ea", text: c.Ea, v: &p.Ea},
		} {
			v, err := ParseLiteral(f.text)
			if err != nil {
				return nil, &ReactionError{Index: index, Equation: equation, Channel: j, Field: f.name, Err: err}
			}
			*f.v = v
		}
		r.Channels = append(r.Channels, p)
	}
	if len(r.Channels) == 0 {
		return nil, nil
	}
	return r, nil
}

// ParseReactions parses every reaction in the input list, returning
// the ones that are ready for calculation in their original order.
// Errors for individual reactions are collected and returned alongside
// rather than stopping the other reactions from being parsed.
func ParseReactions(inputs []ReactionInput) ([]*Reaction, []error) {
	var (
		reactions []*Reaction
		errs      []error
	)
	for i, in := range inputs {
		r, err := in.Parse(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if r != nil {
			reactions = append(reactions, r)
		}
	}
	return reactions, errs
}
