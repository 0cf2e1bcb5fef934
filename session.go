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

	"github.com/sirupsen/logrus"
)

// Session holds the list of reactions that a user is working on.
// It is not safe for concurrent use.
type Session struct {
	reactions []ReactionInput

	Log logrus.FieldLogger
}

// NewSession creates a session holding copies of the given reactions.
// Reactions without channels are given the default channels for their
// kind.
func NewSession(reactions ...ReactionInput) (*Session, error) {
	s := &Session{Log: logrus.StandardLogger()}
	for i, r := range reactions {
		if len(r.Channels) == 0 {
			r.Channels = NewReactionInput(r.Kind).Channels
		}
		if err := checkChannels(i, r); err != nil {
			return nil, err
		}
		s.reactions = append(s.reactions, copyInput(r))
	}
	return s, nil
}

func copyInput(r ReactionInput) ReactionInput {
	r.Channels = append([]ChannelInput(nil), r.Channels...)
	return r
}

// Len returns the number of reactions in the session.
func (s *Session) Len() int { return len(s.reactions) }

// Reactions returns a copy of the reactions in the session.
func (s *Session) Reactions() []ReactionInput {
	o := make([]ReactionInput, len(s.reactions))
	for i, r := range s.reactions {
		o[i] = copyInput(r)
	}
	return o
}

// Reaction returns a copy of reaction i.
func (s *Session) Reaction(i int) (ReactionInput, error) {
	if err := s.check(i); err != nil {
		return ReactionInput{}, err
	}
	return copyInput(s.reactions[i]), nil
}

func (s *Session) check(i int) error {
	if i < 0 || i >= len(s.reactions) {
		return fmt.Errorf("arrhenius: reaction %d does not exist; the session has %d reactions", i+1, len(s.reactions))
	}
	return nil
}

// checkChannels returns an error if r, at index i, has no channels or
// is a single reaction with more than one.
func checkChannels(i int, r ReactionInput) error {
	if len(r.Channels) == 0 {
		return fmt.Errorf("arrhenius: reaction %d must have at least one channel", i+1)
	}
	if r.Kind == Single && len(r.Channels) > 1 {
		return fmt.Errorf("arrhenius: single reaction %d can only have one channel but has %d", i+1, len(r.Channels))
	}
	return nil
}

// Add appends a reaction to the session and returns its index.
// A reaction without channels is given the default number of
// empty channels for its kind.
func (s *Session) Add(r ReactionInput) (int, error) {
	if len(r.Channels) == 0 {
		r.Channels = NewReactionInput(r.Kind).Channels
	}
	i := len(s.reactions)
	if err := checkChannels(i, r); err != nil {
		return 0, err
	}
	s.reactions = append(s.reactions, copyInput(r))
	s.Log.WithFields(logrus.Fields{
		"index":    i,
		"equation": r.Equation,
		"kind":     r.Kind,
	}).Debug("added reaction")
	return i, nil
}

// AddEmpty appends an empty reaction of the given kind and returns
// its index.
func (s *Session) AddEmpty(k Kind) int {
	i, _ := s.Add(NewReactionInput(k)) // empty reactions always have valid channels
	return i
}

// Update replaces reaction i.
func (s *Session) Update(i int, r ReactionInput) error {
	if err := s.check(i); err != nil {
		return err
	}
	if err := checkChannels(i, r); err != nil {
		return err
	}
	s.reactions[i] = copyInput(r)
	return nil
}

// Remove deletes reaction i.
func (s *Session) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.reactions = append(s.reactions[:i], s.reactions[i+1:]...)
	return nil
}

// AddChannel appends an empty channel to duplicate reaction i and
// returns the index of the new channel.
func (s *Session) AddChannel(i int) (int, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}
	r := &s.reactions[i]
	if r.Kind != Duplicate {
		return 0, fmt.Errorf("arrhenius: channels can only be added to duplicate reactions")
	}
	r.Channels = append(r.Channels, ChannelInput{})
	return len(r.Channels) - 1, nil
}

// RemoveChannel deletes channel j of reaction i. The last remaining
// channel can't be removed.
func (s *Session) RemoveChannel(i, j int) error {
	if err := s.check(i); err != nil {
		return err
	}
	r := &s.reactions[i]
	if j < 0 || j >= len(r.Channels) {
		return fmt.Errorf("arrhenius: reaction %d has no channel %d", i+1, j+1)
	}
	if len(r.Channels) == 1 {
		return fmt.Errorf("arrhenius: can't remove the only channel of reaction %d", i+1)
	}
	r.Channels = append(r.Channels[:j], r.Channels[j+1:]...)
	return nil
}

// Compute parses every reaction in the session and calculates the
// curves and summary table for the ones that are ready. Reactions
// that can't be parsed are reported in Result.Errors and logged.
func (s *Session) Compute(cfg Config) (*Result, error) {
	reactions, errs := ParseReactions(s.reactions)
	for _, err := range errs {
		s.Log.WithError(err).Warn("reaction left out")
	}
	res, err := Assemble(reactions, cfg)
	if err != nil {
		return nil, err
	}
	res.Errors = errs
	if res.Empty() {
		s.Log.Info("no complete reactions to show yet")
	}
	return res, nil
}
