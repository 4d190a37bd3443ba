// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/campus-ballot/models"
)

// Status returns the current election's lifecycle state and dates.
// When no election row exists it degrades to "upcoming" with no dates
// instead of failing. Pure read, no side effects.
func Status(db *sql.DB) (models.ElectionStatusResponse, error) {
	var resp models.ElectionStatusResponse
	err := db.QueryRow(`
		SELECT status, start_date, end_date
		FROM election
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&resp.Status, &resp.StartDate, &resp.EndDate)

	if err == sql.ErrNoRows {
		return models.ElectionStatusResponse{Status: models.StatusUpcoming}, nil
	}
	if err != nil {
		return models.ElectionStatusResponse{}, fmt.Errorf("failed to query election status: %w", err)
	}

	return resp, nil
}

// VotingOpen reports whether ballots are currently accepted.
// Voting is allowed iff the election status is "active".
func VotingOpen(db *sql.DB) (bool, error) {
	status, err := Status(db)
	if err != nil {
		return false, err
	}
	return status.Status == models.StatusActive, nil
}
