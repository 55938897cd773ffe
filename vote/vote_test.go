// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/askia-app/askia/models"
)

func testPoll() models.Poll {
	return models.Poll{
		ID:        "p1",
		OwnerID:   "U_OWNER",
		ChannelID: "C1",
		Question:  "Lunch?",
		Options: []models.Option{
			{ID: 0, Label: "Pizza", Voters: []string{}},
			{ID: 1, Label: "Sushi", Voters: []string{}},
			{ID: 2, Label: "Ramen", Voters: []string{}},
		},
	}
}

// votedOptions returns the IDs of every option holding voterID.
func votedOptions(p models.Poll, voterID string) []int {
	var ids []int
	for _, opt := range p.Options {
		for _, v := range opt.Voters {
			if v == voterID {
				ids = append(ids, opt.ID)
			}
		}
	}
	return ids
}

func TestDispatchFirstVote(t *testing.T) {
	poll := testPoll()

	delta, err := Dispatch("U1", poll, 1)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if delta.Toggle {
		t.Error("First vote must not be a toggle")
	}
	if delta.Previous != -1 {
		t.Errorf("Expected Previous -1, got %d", delta.Previous)
	}

	poll = Apply(poll, delta)
	if got := votedOptions(poll, "U1"); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected U1 on option 1 only, got %v", got)
	}
}

func TestDispatchToggleRemovesVote(t *testing.T) {
	poll := testPoll()

	for _, want := range [][]int{{1}, nil} {
		delta, err := Dispatch("U1", poll, 1)
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}
		poll = Apply(poll, delta)
		if diff := cmp.Diff(want, votedOptions(poll, "U1")); diff != "" {
			t.Errorf("Voted options mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDispatchSwitchesVote(t *testing.T) {
	poll := testPoll()

	delta, _ := Dispatch("U1", poll, 0)
	poll = Apply(poll, delta)

	delta, err := Dispatch("U1", poll, 2)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if delta.Previous != 0 {
		t.Errorf("Expected Previous 0, got %d", delta.Previous)
	}
	poll = Apply(poll, delta)

	if got := votedOptions(poll, "U1"); len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected U1 on option 2 only, got %v", got)
	}
}

// TestDispatchSingleChoice exercises an arbitrary press sequence and checks
// the voter never ends up in more than one voter set.
func TestDispatchSingleChoice(t *testing.T) {
	poll := testPoll()

	for _, press := range []int{0, 1, 1, 2, 0, 0, 2, 1} {
		delta, err := Dispatch("U1", poll, press)
		if err != nil {
			t.Fatalf("Dispatch(%d) failed: %v", press, err)
		}
		poll = Apply(poll, delta)
		if got := votedOptions(poll, "U1"); len(got) > 1 {
			t.Fatalf("After pressing %d, U1 is on multiple options: %v", press, got)
		}
	}
}

func TestDispatchUnknownOption(t *testing.T) {
	poll := testPoll()
	delta, _ := Dispatch("U1", poll, 0)
	poll = Apply(poll, delta)

	before := poll
	_, err := Dispatch("U2", poll, 99)
	if !errors.Is(err, models.ErrUnknownOption) {
		t.Fatalf("Expected ErrUnknownOption, got %v", err)
	}
	// No voter set may have been touched.
	if diff := cmp.Diff(before, poll); diff != "" {
		t.Errorf("Poll mutated on failed dispatch (-before +after):\n%s", diff)
	}
}

func TestDispatchDistinctVotersKeepVotes(t *testing.T) {
	poll := testPoll()

	for _, voter := range []string{"U1", "U2", "U3"} {
		delta, err := Dispatch(voter, poll, 1)
		if err != nil {
			t.Fatalf("Dispatch for %s failed: %v", voter, err)
		}
		poll = Apply(poll, delta)
	}

	opt, _ := poll.OptionByID(1)
	if len(opt.Voters) != 3 {
		t.Errorf("Expected 3 voters on option 1, got %v", opt.Voters)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	poll := testPoll()
	delta, _ := Dispatch("U1", poll, 0)

	_ = Apply(poll, delta)
	if got := votedOptions(poll, "U1"); got != nil {
		t.Errorf("Apply mutated its input: %v", got)
	}
}
