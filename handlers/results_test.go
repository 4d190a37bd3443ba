// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/campus-ballot/models"
	"github.com/danielhkuo/campus-ballot/testutil"
)

func TestGetResults_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Results) != 0 {
		t.Errorf("Expected no results, got %d", len(resp.Results))
	}
}

func TestGetResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	testutil.CreateTestElection(t, conn, models.StatusActive)
	president := testutil.CreateTestPosition(t, conn, "President")
	secretary := testutil.CreateTestPosition(t, conn, "Secretary")
	alice := testutil.CreateTestCandidate(t, conn, president, "Alice")
	bob := testutil.CreateTestCandidate(t, conn, president, "Bob")
	testutil.CreateTestCandidate(t, conn, secretary, "Carol")

	s1 := testutil.CreateTestStudent(t, conn, "ST00001", "password123")
	s2 := testutil.CreateTestStudent(t, conn, "ST00002", "password123")
	s3 := testutil.CreateTestStudent(t, conn, "ST00003", "password123")
	testutil.CreateTestVote(t, conn, s1, president, alice)
	testutil.CreateTestVote(t, conn, s2, president, alice)
	testutil.CreateTestVote(t, conn, s3, president, bob)

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 positions, got %d", len(resp.Results))
	}

	// Positions come back ordered by title
	pres := resp.Results[0]
	if pres.PositionTitle != "President" {
		t.Fatalf("Expected President first, got %s", pres.PositionTitle)
	}
	if pres.TotalVotes != 3 {
		t.Errorf("Expected 3 total votes, got %d", pres.TotalVotes)
	}
	if len(pres.Candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(pres.Candidates))
	}
	if pres.Candidates[0].ID != alice || pres.Candidates[0].Votes != 2 || pres.Candidates[0].Percentage != 67 {
		t.Errorf("Unexpected leader: %+v", pres.Candidates[0])
	}
	if pres.Candidates[1].ID != bob || pres.Candidates[1].Votes != 1 || pres.Candidates[1].Percentage != 33 {
		t.Errorf("Unexpected runner-up: %+v", pres.Candidates[1])
	}

	// Vote-less position still appears with zero counts
	sec := resp.Results[1]
	if sec.PositionTitle != "Secretary" {
		t.Fatalf("Expected Secretary second, got %s", sec.PositionTitle)
	}
	if sec.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", sec.TotalVotes)
	}
	if len(sec.Candidates) != 1 || sec.Candidates[0].Votes != 0 || sec.Candidates[0].Percentage != 0 {
		t.Errorf("Unexpected vote-less position result: %+v", sec.Candidates)
	}
}

func TestGetPositionResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	president := testutil.CreateTestPosition(t, conn, "President")
	alice := testutil.CreateTestCandidate(t, conn, president, "Alice")

	s1 := testutil.CreateTestStudent(t, conn, "ST00001", "password123")
	testutil.CreateTestVote(t, conn, s1, president, alice)

	req := testutil.MakeRequest("GET", "/results/position/"+president, nil, nil)
	req.SetPathValue("id", president)
	w := httptest.NewRecorder()
	handler.GetPositionResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.PositionResult
	testutil.AssertJSON(t, w, &result)

	if result.PositionID != president {
		t.Errorf("Expected position %s, got %s", president, result.PositionID)
	}
	if result.TotalVotes != 1 {
		t.Errorf("Expected 1 total vote, got %d", result.TotalVotes)
	}
	if len(result.Candidates) != 1 || result.Candidates[0].Percentage != 100 {
		t.Errorf("Unexpected candidates: %+v", result.Candidates)
	}
}

func TestGetPositionResults_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	req := testutil.MakeRequest("GET", "/results/position/no-such-position", nil, nil)
	req.SetPathValue("id", "no-such-position")
	w := httptest.NewRecorder()
	handler.GetPositionResults(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetPositions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	president := testutil.CreateTestPosition(t, conn, "President")
	secretary := testutil.CreateTestPosition(t, conn, "Secretary")
	testutil.CreateTestCandidate(t, conn, president, "Alice")
	testutil.CreateTestCandidate(t, conn, president, "Bob")
	testutil.CreateTestCandidate(t, conn, secretary, "Carol")

	req := testutil.MakeRequest("GET", "/positions", nil, nil)
	w := httptest.NewRecorder()
	handler.GetPositions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PositionsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Positions) != 2 {
		t.Fatalf("Expected 2 positions, got %d", len(resp.Positions))
	}
	if resp.Positions[0].Position.Title != "President" {
		t.Errorf("Expected President first, got %s", resp.Positions[0].Position.Title)
	}
	if len(resp.Positions[0].Candidates) != 2 {
		t.Errorf("Expected 2 president candidates, got %d", len(resp.Positions[0].Candidates))
	}
	if len(resp.Positions[1].Candidates) != 1 {
		t.Errorf("Expected 1 secretary candidate, got %d", len(resp.Positions[1].Candidates))
	}
}

func TestGetPositions_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	req := testutil.MakeRequest("GET", "/positions", nil, nil)
	w := httptest.NewRecorder()
	handler.GetPositions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PositionsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Positions) != 0 {
		t.Errorf("Expected no positions, got %d", len(resp.Positions))
	}
}
