// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"github.com/askia-app/askia/models"
)

// Delta describes the change a single button press makes to a poll's voter
// sets. It is voter-relative: applying it removes the voter's current vote
// (if any) and, unless Toggle is set, records the vote on Selected. The
// store applies deltas inside a transaction so concurrent presses by
// different voters never clobber each other.
type Delta struct {
	VoterID  string
	Selected int
	// Previous is the option that held the voter before the press, or -1.
	Previous int
	// Toggle marks a re-press of the voter's current option: the vote is
	// removed and nothing is added.
	Toggle bool
}

// Dispatch computes the state delta for voterID pressing the button for
// optionID on poll. Pressing the option the voter already chose un-votes;
// pressing any other option moves the vote there. This is the only place
// vote semantics are decided; the renderer and the store just project and
// apply.
//
// Fails with models.ErrUnknownOption, before any state is touched, when
// optionID does not exist on the poll (stale or tampered button payload).
func Dispatch(voterID string, poll models.Poll, optionID int) (Delta, error) {
	if _, ok := poll.OptionByID(optionID); !ok {
		return Delta{}, models.ErrUnknownOption
	}

	previous := poll.VotedOption(voterID)
	return Delta{
		VoterID:  voterID,
		Selected: optionID,
		Previous: previous,
		Toggle:   previous == optionID,
	}, nil
}

// Apply returns a copy of poll with the delta applied to its voter sets.
// The store applies deltas in SQL and re-reads; Apply is the in-memory
// equivalent, used to state and test what a delta means.
func Apply(poll models.Poll, d Delta) models.Poll {
	out := poll
	out.Options = make([]models.Option, len(poll.Options))
	for i, opt := range poll.Options {
		voters := make([]string, 0, len(opt.Voters))
		for _, v := range opt.Voters {
			if v != d.VoterID {
				voters = append(voters, v)
			}
		}
		if opt.ID == d.Selected && !d.Toggle {
			voters = append(voters, d.VoterID)
		}
		out.Options[i] = models.Option{ID: opt.ID, Label: opt.Label, Voters: voters}
	}
	return out
}
