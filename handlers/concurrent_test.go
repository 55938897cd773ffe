// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/askia-app/askia/testutil"
	"github.com/askia-app/askia/view"
)

// Concurrent presses from distinct voters must all be kept: each press
// is applied as that voter's own row inside one transaction, so no press
// can overwrite another voter's choice.
func TestConcurrentVotesFromDistinctVoters(t *testing.T) {
	st, sink, h := setupActions(t)
	poll := testutil.CreateTestPoll(t, st, "U_OWNER", "C1")

	const voters = 8
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			user := fmt.Sprintf("U_%02d", n)
			w := postAction(t, h, actionPayload("test-app-token", poll.ID, user, view.ActionVote, "1"))
			testutil.AssertStatus(t, w, http.StatusOK)
		}(i)
	}
	wg.Wait()

	updated, err := st.GetPoll(poll.ID)
	if err != nil {
		t.Fatalf("GetPoll: %v", err)
	}
	if got := len(updated.Options[1].Voters); got != voters {
		t.Errorf("Expected %d voters on option 1, got %d (%v)", voters, got, updated.Options[1].Voters)
	}
	if got := len(sink.Updates); got != voters {
		t.Errorf("Expected %d message refreshes, got %d", voters, got)
	}
}

// Concurrent presses from the same voter must leave at most one vote,
// whichever press wins.
func TestConcurrentVotesFromOneVoter(t *testing.T) {
	st, _, h := setupActions(t)
	poll := testutil.CreateTestPoll(t, st, "U_OWNER", "C1")

	var wg sync.WaitGroup
	for _, value := range []string{"0", "1", "2", "0", "1"} {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			postAction(t, h, actionPayload("test-app-token", poll.ID, "U_RAPID", view.ActionVote, v))
		}(value)
	}
	wg.Wait()

	updated, err := st.GetPoll(poll.ID)
	if err != nil {
		t.Fatalf("GetPoll: %v", err)
	}
	total := 0
	for _, opt := range updated.Options {
		total += len(opt.Voters)
	}
	if total > 1 {
		t.Errorf("A single voter holds %d votes, expected at most one", total)
	}
}
