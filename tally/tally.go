// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/campus-ballot/models"
)

var ErrPositionNotFound = errors.New("position not found")

// ComputeResults aggregates the whole election: one PositionResult per
// position, ordered by position title (then ID) for deterministic output.
// Always computed fresh from vote rows - nothing is cached, so results
// reflect the latest committed state.
func ComputeResults(db *sql.DB) ([]models.PositionResult, error) {
	rows, err := db.Query(`
		SELECT id FROM position ORDER BY title, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positionIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positionIDs = append(positionIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}

	results := make([]models.PositionResult, 0, len(positionIDs))
	for _, id := range positionIDs {
		result, err := ComputePositionResult(db, id)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// ComputePositionResult tallies one position: per-candidate counts,
// percentages, and ranking.
//
// Candidates are ordered by vote count descending; ties break by candidate ID
// ascending so repeated calls yield identical output. Percentages are rounded
// independently per candidate and may not sum to exactly 100 (e.g. three
// candidates with one vote each produce 33+33+33); that is expected, not a
// bug. A position with no votes reports every candidate at 0%.
func ComputePositionResult(db *sql.DB, positionID string) (models.PositionResult, error) {
	var title string
	err := db.QueryRow(`
		SELECT title FROM position WHERE id = $1
	`, positionID).Scan(&title)

	if err == sql.ErrNoRows {
		return models.PositionResult{}, fmt.Errorf("%w: %s", ErrPositionNotFound, positionID)
	}
	if err != nil {
		return models.PositionResult{}, fmt.Errorf("failed to query position: %w", err)
	}

	// LEFT JOIN keeps zero-vote candidates in the tally
	rows, err := db.Query(`
		SELECT c.id, c.name, COUNT(v.id)
		FROM candidate c
		LEFT JOIN vote v ON v.candidate_id = c.id
		WHERE c.position_id = $1
		GROUP BY c.id, c.name
	`, positionID)
	if err != nil {
		return models.PositionResult{}, fmt.Errorf("failed to query vote counts: %w", err)
	}
	defer rows.Close()

	var candidates []models.CandidateResult
	totalVotes := 0
	for rows.Next() {
		var c models.CandidateResult
		if err := rows.Scan(&c.ID, &c.Name, &c.Votes); err != nil {
			return models.PositionResult{}, fmt.Errorf("failed to scan vote count: %w", err)
		}
		totalVotes += c.Votes
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return models.PositionResult{}, fmt.Errorf("failed to read vote counts: %w", err)
	}

	for i := range candidates {
		if totalVotes > 0 {
			candidates[i].Percentage = int(math.Round(float64(candidates[i].Votes) / float64(totalVotes) * 100))
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		// 1. Higher vote count wins
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}

		// 2. Stable tie-breaking by candidate ID (ascending)
		return a.ID < b.ID
	})

	if candidates == nil {
		candidates = []models.CandidateResult{}
	}

	return models.PositionResult{
		PositionID:    positionID,
		PositionTitle: title,
		TotalVotes:    totalVotes,
		Candidates:    candidates,
	}, nil
}
