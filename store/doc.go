// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls and workspace tokens over database/sql.

# Operations

	CreatePoll(poll)        assign ID + timestamp, persist, return copy
	GetPoll(id)             load poll with options and voter sets
	UpdatePoll(id, changes) merge message ts and/or a vote delta
	RemovePoll(id)          delete poll, options, votes
	SaveTeam / GetTeam      workspace OAuth tokens

# Serialization

UpdatePoll is the single mutation path for vote state and it closes the
classic fetch-compute-write race: the delta it applies is voter-relative
("move U1 to option 2", "drop U1's vote on option 2"), applied in one
transaction against the committed rows, and the vote table's primary key
(poll_id, voter_id) makes single-choice structural. Two in-flight votes by
different voters land as two independent row upserts; neither can clobber
the other, no matter how stale the poll snapshot each handler read was.

UpdatePoll on an unknown ID fails with models.ErrPollNotFound and never
creates a record.

# Backends

The SQL sticks to the sqlite/postgres common subset ($N placeholders,
ON CONFLICT upserts), matching the DATABASE_TYPE switch in cliparse.
*/
package store
