// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/campus-ballot/auth"
	"github.com/danielhkuo/campus-ballot/db"
	"github.com/danielhkuo/campus-ballot/models"
)

// SubmitBallot commits a batch ballot for a student: at most one selection per
// position, all-or-nothing across the batch. Returns the number of positions
// voted on success.
//
// Validation and referential checks run before any write, so malformed input
// never leaves partial state. The inserts then run in a single transaction;
// the first unique-constraint conflict on (student_id, position_id) aborts
// and rolls back the entire batch with ErrAlreadyVoted. Under two concurrent
// submissions for overlapping positions the storage constraint guarantees
// exactly one succeeds.
func SubmitBallot(dbConn *sql.DB, studentID string, selections []models.Selection) (int, error) {
	if len(selections) == 0 {
		return 0, fmt.Errorf("%w: selections cannot be empty", ErrValidation)
	}

	seen := make(map[string]bool, len(selections))
	for _, sel := range selections {
		if sel.PositionID == "" || sel.CandidateID == "" {
			return 0, fmt.Errorf("%w: position_id and candidate_id are required", ErrValidation)
		}
		if seen[sel.PositionID] {
			return 0, fmt.Errorf("%w: position %s", ErrDuplicatePosition, sel.PositionID)
		}
		seen[sel.PositionID] = true
	}

	var exists bool
	err := dbConn.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM student WHERE id = $1)
	`, studentID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to look up student: %w", err)
	}
	if !exists {
		return 0, ErrStudentNotFound
	}

	// Referential integrity of every selection, before touching vote storage
	for _, sel := range selections {
		err := dbConn.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM position WHERE id = $1)
		`, sel.PositionID).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("failed to look up position: %w", err)
		}
		if !exists {
			return 0, fmt.Errorf("%w: %s", ErrPositionNotFound, sel.PositionID)
		}

		var candidatePositionID string
		err = dbConn.QueryRow(`
			SELECT position_id FROM candidate WHERE id = $1
		`, sel.CandidateID).Scan(&candidatePositionID)
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("%w: %s", ErrCandidateNotFound, sel.CandidateID)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to look up candidate: %w", err)
		}
		if candidatePositionID != sel.PositionID {
			return 0, fmt.Errorf("%w: candidate %s is not running for position %s",
				ErrCandidateMismatch, sel.CandidateID, sel.PositionID)
		}
	}

	tx, err := dbConn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Election gating re-checked inside the transaction to narrow the
	// check-to-commit gap against an admin closing the election.
	var status string
	err = tx.QueryRow(`
		SELECT status FROM election ORDER BY created_at DESC LIMIT 1
	`).Scan(&status)
	if err == sql.ErrNoRows || (err == nil && status != models.StatusActive) {
		return 0, ErrElectionNotActive
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query election status: %w", err)
	}

	now := time.Now()
	for _, sel := range selections {
		_, err := tx.Exec(`
			INSERT INTO vote (id, student_id, position_id, candidate_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, auth.NewID(), studentID, sel.PositionID, sel.CandidateID, now)

		if err != nil {
			if db.IsUniqueViolation(err) {
				return 0, fmt.Errorf("%w: position %s", ErrAlreadyVoted, sel.PositionID)
			}
			return 0, fmt.Errorf("failed to insert vote: %w", err)
		}
	}

	// has_voted is a derived convenience cache ("voted in at least one
	// position"), maintained only here
	_, err = tx.Exec(`
		UPDATE student SET has_voted = TRUE WHERE id = $1
	`, studentID)
	if err != nil {
		return 0, fmt.Errorf("failed to update has_voted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			return 0, ErrAlreadyVoted
		}
		return 0, fmt.Errorf("failed to commit ballot: %w", err)
	}

	slog.Info("ballot committed", "student_id", studentID, "positions", len(selections))

	return len(selections), nil
}
