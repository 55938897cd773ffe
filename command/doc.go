// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package command parses slash-command text into a poll specification.

# Grammar

	/askia "Question?" "Option one" "Option two" ...
	/askia --help

The first token is the question; every following token is an option label.
Double or single quotes group words into one token. Duplicate and empty
labels are dropped.

# Errors

Parse fails with models.ErrMissingQuestion when no question token is
present, and models.ErrTooFewOptions when fewer than two distinct option
labels remain after deduplication.
*/
package command
