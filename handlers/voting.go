// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-ballot/cliparse"
	"github.com/danielhkuo/campus-ballot/middleware"
	"github.com/danielhkuo/campus-ballot/models"
	"github.com/danielhkuo/campus-ballot/voting"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// SubmitBallot handles POST /votes
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.StudentID(r)

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	votesSubmitted, err := voting.SubmitBallot(h.db, studentID, req.Selections)
	if err != nil {
		switch {
		case errors.Is(err, voting.ErrValidation),
			errors.Is(err, voting.ErrDuplicatePosition),
			errors.Is(err, voting.ErrCandidateMismatch):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, voting.ErrElectionNotActive):
			middleware.ErrorResponse(w, http.StatusForbidden, "Election is not active")
		case errors.Is(err, voting.ErrStudentNotFound),
			errors.Is(err, voting.ErrPositionNotFound),
			errors.Is(err, voting.ErrCandidateNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		case errors.Is(err, voting.ErrAlreadyVoted):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		default:
			// Storage failures roll back the whole batch; never leak internals
			slog.Error("ballot submission failed", "error", err, "student_id", studentID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitBallotResponse{
		Message:        "Ballot submitted successfully",
		VotesSubmitted: votesSubmitted,
	})
}

// GetMyVotes handles GET /votes/me
// Lets a client show which positions the caller has already voted on
func (h *VotingHandler) GetMyVotes(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.StudentID(r)

	rows, err := h.db.Query(`
		SELECT id, student_id, position_id, candidate_id, created_at
		FROM vote
		WHERE student_id = $1
		ORDER BY created_at, id
	`, studentID)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.StudentID, &v.PositionID, &v.CandidateID, &v.CreatedAt); err != nil {
			slog.Error("failed to scan vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVotesResponse{Votes: votes})
}
