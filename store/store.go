// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/askia-app/askia/models"
	"github.com/askia-app/askia/vote"
)

// Store persists polls and teams in a SQL database (sqlite or postgres).
// All vote mutation goes through UpdatePoll, which applies voter-relative
// deltas inside a transaction; see the package documentation for the
// serialization guarantees.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Changes carries the fields UpdatePoll may merge into a poll. Nil fields
// are left untouched.
type Changes struct {
	MessageTS *string
	Vote      *vote.Delta
}

// querier is the subset of *sql.DB and *sql.Tx the readers need.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// CreatePoll assigns an ID and creation time, persists the poll with its
// options, and returns the stored copy. The input is not modified.
func (s *Store) CreatePoll(poll models.Poll) (models.Poll, error) {
	poll.ID = uuid.NewString()
	poll.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	tx, err := s.db.Begin()
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, owner_id, channel_id, question, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.OwnerID, poll.ChannelID, poll.Question, poll.CreatedAt)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, opt := range poll.Options {
		_, err = tx.Exec(`
			INSERT INTO option (poll_id, option_id, label)
			VALUES ($1, $2, $3)
		`, poll.ID, opt.ID, opt.Label)
		if err != nil {
			return models.Poll{}, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to commit poll: %w", err)
	}

	return poll, nil
}

// GetPoll loads the poll with its options and voter sets.
// Fails with models.ErrPollNotFound when the ID is unknown.
func (s *Store) GetPoll(id string) (models.Poll, error) {
	return getPoll(s.db, id)
}

func getPoll(q querier, id string) (models.Poll, error) {
	var poll models.Poll
	var messageTS sql.NullString
	err := q.QueryRow(`
		SELECT id, owner_id, channel_id, question, message_ts, created_at
		FROM poll WHERE id = $1
	`, id).Scan(&poll.ID, &poll.OwnerID, &poll.ChannelID, &poll.Question, &messageTS, &poll.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, models.ErrPollNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}
	poll.MessageTS = messageTS.String

	rows, err := q.Query(`
		SELECT option_id, label FROM option WHERE poll_id = $1 ORDER BY option_id
	`, id)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	index := make(map[int]int)
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Label); err != nil {
			return models.Poll{}, fmt.Errorf("failed to scan option: %w", err)
		}
		opt.Voters = []string{}
		index[opt.ID] = len(poll.Options)
		poll.Options = append(poll.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to read options: %w", err)
	}

	// voter_id ordering keeps renders of the same state byte-identical.
	votes, err := q.Query(`
		SELECT voter_id, option_id FROM vote WHERE poll_id = $1 ORDER BY voter_id
	`, id)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query votes: %w", err)
	}
	defer votes.Close()

	for votes.Next() {
		var voterID string
		var optionID int
		if err := votes.Scan(&voterID, &optionID); err != nil {
			return models.Poll{}, fmt.Errorf("failed to scan vote: %w", err)
		}
		if i, ok := index[optionID]; ok {
			poll.Options[i].Voters = append(poll.Options[i].Voters, voterID)
		}
	}
	if err := votes.Err(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to read votes: %w", err)
	}

	return poll, nil
}

// UpdatePoll merges the supplied changes into the poll and returns the
// merged entity. The whole merge runs in one transaction: a vote delta is
// applied relative to the voter's committed row, so two concurrent votes
// by different voters are both kept, and a toggle observed against a stale
// read still only ever removes that voter's own row.
//
// Fails with models.ErrPollNotFound when the ID is unknown; it never
// creates a record.
func (s *Store) UpdatePoll(id string, changes Changes) (models.Poll, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to check poll: %w", err)
	}
	if !exists {
		return models.Poll{}, models.ErrPollNotFound
	}

	if changes.MessageTS != nil {
		_, err = tx.Exec(`UPDATE poll SET message_ts = $1 WHERE id = $2`, *changes.MessageTS, id)
		if err != nil {
			return models.Poll{}, fmt.Errorf("failed to update message ts: %w", err)
		}
	}

	if d := changes.Vote; d != nil {
		if d.Toggle {
			_, err = tx.Exec(`
				DELETE FROM vote WHERE poll_id = $1 AND voter_id = $2 AND option_id = $3
			`, id, d.VoterID, d.Selected)
		} else {
			_, err = tx.Exec(`
				INSERT INTO vote (poll_id, voter_id, option_id)
				VALUES ($1, $2, $3)
				ON CONFLICT (poll_id, voter_id) DO UPDATE SET option_id = excluded.option_id
			`, id, d.VoterID, d.Selected)
		}
		if err != nil {
			return models.Poll{}, fmt.Errorf("failed to apply vote: %w", err)
		}
	}

	poll, err := getPoll(tx, id)
	if err != nil {
		return models.Poll{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to commit update: %w", err)
	}

	return poll, nil
}

// RemovePoll deletes the poll with its options and votes.
// Fails with models.ErrPollNotFound when the ID is unknown.
func (s *Store) RemovePoll(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Explicit child deletes rather than relying on cascade pragmas.
	if _, err := tx.Exec(`DELETE FROM vote WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM option WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted rows: %w", err)
	}
	if n == 0 {
		return models.ErrPollNotFound
	}

	return tx.Commit()
}
