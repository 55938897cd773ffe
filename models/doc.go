// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and error taxonomy for the bot.

# Domain Types

  - PollSpec: parser output (question + ordered option labels)
  - Poll: stored entity (owner, channel, options with voter sets, message ts)
  - Option: votable choice with a stable integer ID and its voter set
  - Team: workspace OAuth token record

# Poll Construction

NewPoll is the only way a Poll comes into existence. It is a pure function
of (ownerID, channelID, spec); the store assigns the opaque ID and the
creation timestamp when the poll is persisted:

	poll := models.NewPoll(userID, channelID, spec)
	stored, err := st.CreatePoll(poll)

# Errors

Sentinel errors cover everything a user can cause:

	ErrMissingQuestion  malformed command, no question text
	ErrTooFewOptions    malformed command, fewer than 2 option labels
	ErrPollNotFound     referenced poll id missing (e.g. already deleted)
	ErrTeamNotFound     workspace never completed the OAuth install
	ErrUnknownOption    stale or tampered button payload
	ErrNotPollOwner     non-owner pressed the delete button

Handlers match these with errors.Is and respond with an ephemeral notice;
none of them is fatal to the serving process.
*/
package models
