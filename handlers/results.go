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
	"github.com/danielhkuo/campus-ballot/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /results
// Returns live tallies for every position
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := tally.ComputeResults(h.db)
	if err != nil {
		slog.Error("failed to compute results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	if results == nil {
		results = []models.PositionResult{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{Results: results})
}

// GetPositionResults handles GET /results/position/{id}
func (h *ResultsHandler) GetPositionResults(w http.ResponseWriter, r *http.Request) {
	positionID := r.PathValue("id")
	if positionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position id is required")
		return
	}

	result, err := tally.ComputePositionResult(h.db, positionID)
	if errors.Is(err, tally.ErrPositionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Position not found")
		return
	}
	if err != nil {
		slog.Error("failed to compute position result", "error", err, "position_id", positionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetPositions handles GET /positions
// Returns all positions with their candidates, for ballot rendering
func (h *ResultsHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positionRows, err := h.db.Query(`
		SELECT id, title FROM position ORDER BY title, id
	`)
	if err != nil {
		slog.Error("failed to query positions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer positionRows.Close()

	positions := []models.PositionWithCandidates{}
	for positionRows.Next() {
		var p models.Position
		if err := positionRows.Scan(&p.ID, &p.Title); err != nil {
			slog.Error("failed to scan position", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		positions = append(positions, models.PositionWithCandidates{
			Position:   p,
			Candidates: []models.Candidate{},
		})
	}
	if err := positionRows.Err(); err != nil {
		slog.Error("failed to read positions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	candidateRows, err := h.db.Query(`
		SELECT id, position_id, name, photo_url, manifesto
		FROM candidate
		ORDER BY name, id
	`)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer candidateRows.Close()

	byPosition := make(map[string][]models.Candidate)
	for candidateRows.Next() {
		var c models.Candidate
		if err := candidateRows.Scan(&c.ID, &c.PositionID, &c.Name, &c.PhotoURL, &c.Manifesto); err != nil {
			slog.Error("failed to scan candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		byPosition[c.PositionID] = append(byPosition[c.PositionID], c)
	}
	if err := candidateRows.Err(); err != nil {
		slog.Error("failed to read candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range positions {
		if candidates, ok := byPosition[positions[i].Position.ID]; ok {
			positions[i].Candidates = candidates
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PositionsResponse{Positions: positions})
}
