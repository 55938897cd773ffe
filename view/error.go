// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"errors"

	"github.com/askia-app/askia/models"
)

// Notice maps an internal failure to the short text shown ephemerally to
// the acting user. Unrecognized errors get a generic line so internals
// never leak into chat.
func Notice(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingQuestion):
		return "I could not find a question. Try: `/askia \"Question?\" \"Option A\" \"Option B\"`"
	case errors.Is(err, models.ErrTooFewOptions):
		return "A poll needs at least two options. Try: `/askia \"Question?\" \"Option A\" \"Option B\"`"
	case errors.Is(err, models.ErrPollNotFound):
		return "That poll does not exist anymore."
	case errors.Is(err, models.ErrUnknownOption):
		return "That option does not exist on this poll."
	case errors.Is(err, models.ErrNotPollOwner):
		return "Only the poll creator is able to remove it."
	case errors.Is(err, models.ErrTeamNotFound):
		return "This workspace has not finished installing the app."
	default:
		return "Something went wrong. Please try again."
	}
}
