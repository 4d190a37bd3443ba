// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Election status constants
const (
	StatusUpcoming = "upcoming"
	StatusActive   = "active"
	StatusClosed   = "closed"
)

// ValidStatus reports whether s is one of the three election statuses.
func ValidStatus(s string) bool {
	return s == StatusUpcoming || s == StatusActive || s == StatusClosed
}

// Request types

type LoginRequest struct {
	IndexNumber string `json:"index_number"`
	Password    string `json:"password"`
}

// One position -> candidate choice inside a ballot
type Selection struct {
	PositionID  string `json:"position_id"`
	CandidateID string `json:"candidate_id"`
}

type SubmitBallotRequest struct {
	Selections []Selection `json:"selections"`
}

type CreateElectionRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type UpdateElectionStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type LoginResponse struct {
	Token   string  `json:"token"`
	Student Student `json:"student"`
}

type SubmitBallotResponse struct {
	Message        string `json:"message"`
	VotesSubmitted int    `json:"votes_submitted"`
}

type ElectionStatusResponse struct {
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type CreateElectionResponse struct {
	Election Election `json:"election"`
	AdminKey string   `json:"admin_key"`
}

type ResultsResponse struct {
	Results []PositionResult `json:"results"`
}

type PositionsResponse struct {
	Positions []PositionWithCandidates `json:"positions"`
}

type MyVotesResponse struct {
	Votes []Vote `json:"votes"`
}

// Domain types

type Student struct {
	ID           string    `json:"id"`
	IndexNumber  string    `json:"index_number"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Email        *string   `json:"email,omitempty"`
	Year         *int      `json:"year,omitempty"`
	HasVoted     bool      `json:"has_voted"`
	CreatedAt    time.Time `json:"created_at"`
}

type Election struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Position struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Candidate struct {
	ID         string  `json:"id"`
	PositionID string  `json:"position_id"`
	Name       string  `json:"name"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	Manifesto  *string `json:"manifesto,omitempty"`
}

type PositionWithCandidates struct {
	Position   Position    `json:"position"`
	Candidates []Candidate `json:"candidates"`
}

type Vote struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"-"` // Never expose in JSON
	PositionID  string    `json:"position_id"`
	CandidateID string    `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tally result types

type CandidateResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type PositionResult struct {
	PositionID    string            `json:"position_id"`
	PositionTitle string            `json:"position_title"`
	TotalVotes    int               `json:"total_votes"`
	Candidates    []CandidateResult `json:"candidates"` // Ordered by votes desc, id asc
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
