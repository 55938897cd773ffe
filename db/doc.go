// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	poll   - poll metadata (owner, channel, question, message ts)
	option - votable options per poll, dense integer IDs
	vote   - one row per (poll, voter); option_id is the current choice
	team   - OAuth access token per installed workspace

# Relationships

	poll 1──* option
	poll 1──* vote

All foreign keys use ON DELETE CASCADE, so removing a poll takes its
options and votes with it.

# Single-choice invariant

vote's PRIMARY KEY (poll_id, voter_id) means a voter can never hold more
than one option on a poll, regardless of what the application layer does.
*/
package db
