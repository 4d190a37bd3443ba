// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"
)

// CheckEligibility reports whether a student may currently vote for a
// position. Returns nil when eligible, otherwise ErrStudentNotFound,
// ErrPositionNotFound, ErrElectionNotActive, or ErrAlreadyVoted.
//
// Eligibility is decided from the presence of vote rows, never from the
// student's has_voted flag (that flag is a derived cache, not a source of
// truth). This check is advisory: SubmitBallot re-establishes it inside the
// commit transaction, with the vote table's unique constraint as the final
// arbiter under concurrency.
func CheckEligibility(db *sql.DB, studentID, positionID string) error {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM student WHERE id = $1)
	`, studentID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up student: %w", err)
	}
	if !exists {
		return ErrStudentNotFound
	}

	err = db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM position WHERE id = $1)
	`, positionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up position: %w", err)
	}
	if !exists {
		return ErrPositionNotFound
	}

	open, err := VotingOpen(db)
	if err != nil {
		return err
	}
	if !open {
		return ErrElectionNotActive
	}

	err = db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE student_id = $1 AND position_id = $2
		)
	`, studentID, positionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up existing vote: %w", err)
	}
	if exists {
		return ErrAlreadyVoted
	}

	return nil
}
