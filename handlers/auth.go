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
	"github.com/danielhkuo/campus-ballot/middleware"
	"github.com/danielhkuo/campus-ballot/models"
)

// Sessions expire after 30 days; students re-login afterwards
const sessionTTL = 30 * 24 * time.Hour

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.IndexNumber == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index_number and password are required")
		return
	}

	var student models.Student
	err := h.db.QueryRow(`
		SELECT id, index_number, full_name, password_hash, email, year, has_voted, created_at
		FROM student
		WHERE index_number = $1
	`, req.IndexNumber).Scan(
		&student.ID, &student.IndexNumber, &student.FullName, &student.PasswordHash,
		&student.Email, &student.Year, &student.HasVoted, &student.CreatedAt,
	)

	// Unknown index number and wrong password are indistinguishable to the caller
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid index number or password")
		return
	}
	if err != nil {
		slog.Error("failed to query student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(req.Password, student.PasswordHash); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid index number or password")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO session (token, student_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, student.ID, now, now.Add(sessionTTL))
	if err != nil {
		slog.Error("failed to insert session", "error", err, "student_id", student.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("student logged in", "student_id", student.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:   token,
		Student: student,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)

	_, err := h.db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.StudentID(r)

	var student models.Student
	err := h.db.QueryRow(`
		SELECT id, index_number, full_name, password_hash, email, year, has_voted, created_at
		FROM student
		WHERE id = $1
	`, studentID).Scan(
		&student.ID, &student.IndexNumber, &student.FullName, &student.PasswordHash,
		&student.Email, &student.Year, &student.HasVoted, &student.CreatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		slog.Error("failed to query student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, student)
}
