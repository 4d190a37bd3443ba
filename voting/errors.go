// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Every failure mode of ballot submission is one of these sentinels so the
// HTTP layer can map each kind to a status code with errors.Is.
var (
	ErrValidation        = errors.New("invalid ballot")
	ErrDuplicatePosition = errors.New("duplicate position in ballot")
	ErrElectionNotActive = errors.New("election is not active")
	ErrAlreadyVoted      = errors.New("already voted for this position")
	ErrCandidateMismatch = errors.New("candidate does not belong to position")
	ErrStudentNotFound   = errors.New("student not found")
	ErrPositionNotFound  = errors.New("position not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)
