// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/askia-app/askia/models"
)

// SaveTeam records the workspace access token obtained during the OAuth
// install. Reinstalling a workspace replaces the previous token.
func (s *Store) SaveTeam(team models.Team) error {
	if team.InstalledAt.IsZero() {
		team.InstalledAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO team (team_id, access_token, installed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id) DO UPDATE
		SET access_token = excluded.access_token, installed_at = excluded.installed_at
	`, team.ID, team.AccessToken, team.InstalledAt)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	return nil
}

// GetTeam looks up the access token for a workspace.
// Fails with models.ErrTeamNotFound when the workspace never installed.
func (s *Store) GetTeam(teamID string) (models.Team, error) {
	var team models.Team
	err := s.db.QueryRow(`
		SELECT team_id, access_token, installed_at FROM team WHERE team_id = $1
	`, teamID).Scan(&team.ID, &team.AccessToken, &team.InstalledAt)
	if err == sql.ErrNoRows {
		return models.Team{}, models.ErrTeamNotFound
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to query team: %w", err)
	}
	return team, nil
}
