// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/campus-ballot/auth"
	"github.com/danielhkuo/campus-ballot/cliparse"
	"github.com/danielhkuo/campus-ballot/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Every test gets an isolated database; no external services needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3520,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// CreateTestStudent inserts a student with the given credentials and returns its ID
func CreateTestStudent(t *testing.T, conn *sql.DB, indexNumber, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	studentID := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO student (id, index_number, full_name, password_hash, has_voted, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
	`, studentID, indexNumber, "Test Student", hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}

	return studentID
}

// CreateTestSession inserts an unexpired session for the student and returns the token
func CreateTestSession(t *testing.T, conn *sql.DB, studentID string) string {
	t.Helper()

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}

	now := time.Now()
	_, err = conn.Exec(`
		INSERT INTO session (token, student_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, studentID, now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestElection inserts an election with the given status and returns its ID
// status should be "upcoming", "active", or "closed"
func CreateTestElection(t *testing.T, conn *sql.DB, status string) string {
	t.Helper()

	electionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO election (id, status, created_at)
		VALUES ($1, $2, $3)
	`, electionID, status, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return electionID
}

// CreateTestPosition inserts a position and returns its ID
func CreateTestPosition(t *testing.T, conn *sql.DB, title string) string {
	t.Helper()

	positionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO position (id, title)
		VALUES ($1, $2)
	`, positionID, title)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	return positionID
}

// CreateTestCandidate inserts a candidate for a position and returns its ID
func CreateTestCandidate(t *testing.T, conn *sql.DB, positionID, name string) string {
	t.Helper()

	candidateID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO candidate (id, position_id, name)
		VALUES ($1, $2, $3)
	`, candidateID, positionID, name)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// CreateTestVote inserts a committed vote directly and returns its ID
func CreateTestVote(t *testing.T, conn *sql.DB, studentID, positionID, candidateID string) string {
	t.Helper()

	voteID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO vote (id, student_id, position_id, candidate_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, studentID, positionID, candidateID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountVotes returns the number of vote rows for a (student, position) pair
func CountVotes(t *testing.T, conn *sql.DB, studentID, positionID string) int {
	t.Helper()
	var n int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE student_id = $1 AND position_id = $2
	`, studentID, positionID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}
