// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to the sqlite/postgres common subset.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    channel_id TEXT NOT NULL,
    question TEXT NOT NULL,
    message_ts TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_poll_channel_id ON poll(channel_id);

-- Options
CREATE TABLE IF NOT EXISTS option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    option_id INTEGER NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (poll_id, option_id)
);

-- Votes
-- The primary key makes single-choice structural: a voter holds at most
-- one row per poll, whatever the handlers do.
CREATE TABLE IF NOT EXISTS vote (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    option_id INTEGER NOT NULL,
    PRIMARY KEY (poll_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_poll_option ON vote(poll_id, option_id);

-- Teams (one row per installed workspace)
CREATE TABLE IF NOT EXISTS team (
    team_id TEXT PRIMARY KEY,
    access_token TEXT NOT NULL,
    installed_at TIMESTAMP NOT NULL
);
`
