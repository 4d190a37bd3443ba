// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/campus-ballot/auth"
	"github.com/danielhkuo/campus-ballot/cliparse"
	"github.com/danielhkuo/campus-ballot/db"
	"github.com/danielhkuo/campus-ballot/middleware"
	"github.com/danielhkuo/campus-ballot/models"
	"github.com/danielhkuo/campus-ballot/voting"
)

type ElectionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg}
}

// GetStatus handles GET /election/status
func (h *ElectionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := voting.Status(h.db)
	if err != nil {
		slog.Error("failed to get election status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// CreateElection handles POST /admin/elections
// Creates the singleton election in "upcoming" status and returns the
// admin key needed for later status transitions.
//
// There is no election ID to scope a key to yet, so the caller must present
// the bootstrap key derived from auth.CreationKeySubject (logged at startup).
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return
	}
	if err := auth.ValidateAdminKey(auth.CreationKeySubject, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var count int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM election`).Scan(&count); err != nil {
		slog.Error("failed to count elections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "An election already exists")
		return
	}

	election := models.Election{
		ID:        auth.NewID(),
		Status:    models.StatusUpcoming,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now(),
	}

	_, err := h.db.Exec(`
		INSERT INTO election (id, status, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, election.ID, election.Status, election.StartDate, election.EndDate, election.CreatedAt)
	if err != nil {
		// The singleton constraint closes the race two concurrent creates
		// can win past the COUNT check above
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "An election already exists")
			return
		}
		slog.Error("failed to insert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	slog.Info("election created", "election_id", election.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		Election: election,
		AdminKey: auth.GenerateAdminKey(election.ID, h.cfg.AdminKeySalt),
	})
}

// UpdateStatus handles PUT /admin/election/status
// Status transitions are admin-driven; monotonicity (upcoming -> active ->
// closed) is a convention, not enforced here
func (h *ElectionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return
	}

	var req models.UpdateElectionStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidStatus(req.Status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be upcoming, active, or closed")
		return
	}

	var election models.Election
	err := h.db.QueryRow(`
		SELECT id, status, start_date, end_date, created_at
		FROM election
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&election.ID, &election.Status, &election.StartDate, &election.EndDate, &election.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No election exists")
		return
	}
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.ValidateAdminKey(election.ID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	_, err = h.db.Exec(`
		UPDATE election SET status = $1 WHERE id = $2
	`, req.Status, election.ID)
	if err != nil {
		slog.Error("failed to update election status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	slog.Info("election status updated", "election_id", election.ID, "from", election.Status, "to", req.Status)

	election.Status = req.Status
	middleware.JSONResponse(w, http.StatusOK, election)
}
