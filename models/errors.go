// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Domain errors. Every failure a user can cause maps to one of these; the
// handlers match them with errors.Is and turn them into ephemeral notices.
var (
	ErrMissingQuestion = errors.New("no question text precedes the options")
	ErrTooFewOptions   = errors.New("a poll needs at least two options")
	ErrPollNotFound    = errors.New("poll not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrUnknownOption   = errors.New("option does not exist on this poll")
	ErrNotPollOwner    = errors.New("only the poll creator is able to remove it")
)
