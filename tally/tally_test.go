package tally

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/danielhkuo/campus-ballot/models"
	"github.com/danielhkuo/campus-ballot/testutil"
)

func TestComputePositionResult_UnknownPosition(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := ComputePositionResult(db, "no-such-position")
	if !errors.Is(err, ErrPositionNotFound) {
		t.Errorf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestComputePositionResult_NoVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p1 := testutil.CreateTestPosition(t, db, "President")
	testutil.CreateTestCandidate(t, db, p1, "Alice")
	testutil.CreateTestCandidate(t, db, p1, "Bob")

	result, err := ComputePositionResult(db, p1)
	if err != nil {
		t.Fatalf("ComputePositionResult failed: %v", err)
	}

	if result.TotalVotes != 0 {
		t.Errorf("expected 0 total votes, got %d", result.TotalVotes)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(result.Candidates))
	}
	for _, c := range result.Candidates {
		if c.Votes != 0 || c.Percentage != 0 {
			t.Errorf("candidate %s: expected 0 votes and 0%%, got %d votes, %d%%", c.Name, c.Votes, c.Percentage)
		}
	}
}

func TestComputePositionResult_SingleVoter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestElection(t, db, models.StatusActive)

	studentID := testutil.CreateTestStudent(t, db, "ST1001", "password123")
	p1 := testutil.CreateTestPosition(t, db, "President")
	c1 := testutil.CreateTestCandidate(t, db, p1, "Alice")
	testutil.CreateTestCandidate(t, db, p1, "Bob")

	testutil.CreateTestVote(t, db, studentID, p1, c1)

	result, err := ComputePositionResult(db, p1)
	if err != nil {
		t.Fatalf("ComputePositionResult failed: %v", err)
	}

	if result.TotalVotes != 1 {
		t.Errorf("expected 1 total vote, got %d", result.TotalVotes)
	}
	if result.Candidates[0].ID != c1 {
		t.Errorf("expected C1 ranked first")
	}
	if result.Candidates[0].Votes != 1 || result.Candidates[0].Percentage != 100 {
		t.Errorf("expected C1 at 1 vote / 100%%, got %d / %d%%",
			result.Candidates[0].Votes, result.Candidates[0].Percentage)
	}
}

// Votes {C1:2, C2:2, C3:1} -> total 5, percentages 40/40/20, ties broken by ID.
func TestComputePositionResult_RankingAndPercentages(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p1 := testutil.CreateTestPosition(t, db, "President")
	c1 := testutil.CreateTestCandidate(t, db, p1, "Alice")
	c2 := testutil.CreateTestCandidate(t, db, p1, "Bob")
	c3 := testutil.CreateTestCandidate(t, db, p1, "Carol")

	voters := []string{"ST1", "ST2", "ST3", "ST4", "ST5"}
	votes := []string{c1, c1, c2, c2, c3}
	for i, indexNumber := range voters {
		studentID := testutil.CreateTestStudent(t, db, indexNumber, "password123")
		testutil.CreateTestVote(t, db, studentID, p1, votes[i])
	}

	result, err := ComputePositionResult(db, p1)
	if err != nil {
		t.Fatalf("ComputePositionResult failed: %v", err)
	}

	if result.TotalVotes != 5 {
		t.Errorf("expected 5 total votes, got %d", result.TotalVotes)
	}

	sum := 0
	for _, c := range result.Candidates {
		sum += c.Votes
		if c.Percentage < 0 || c.Percentage > 100 {
			t.Errorf("candidate %s: percentage %d out of bounds", c.Name, c.Percentage)
		}
	}
	if sum != result.TotalVotes {
		t.Errorf("total votes %d != sum of candidate votes %d", result.TotalVotes, sum)
	}

	// Votes descending, ID ascending among the tied pair
	wantFirst, wantSecond := c1, c2
	if c2 < c1 {
		wantFirst, wantSecond = c2, c1
	}
	got := result.Candidates
	if got[0].ID != wantFirst || got[1].ID != wantSecond || got[2].ID != c3 {
		t.Errorf("unexpected ranking order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}

	if got[0].Percentage != 40 || got[1].Percentage != 40 || got[2].Percentage != 20 {
		t.Errorf("expected 40/40/20, got %d/%d/%d", got[0].Percentage, got[1].Percentage, got[2].Percentage)
	}
}

// Three candidates with one vote each round to 33/33/33 - summing to 99 is
// expected behavior, not a bug.
func TestComputePositionResult_PercentagesNeedNotSumTo100(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p1 := testutil.CreateTestPosition(t, db, "President")
	candidates := []string{
		testutil.CreateTestCandidate(t, db, p1, "Alice"),
		testutil.CreateTestCandidate(t, db, p1, "Bob"),
		testutil.CreateTestCandidate(t, db, p1, "Carol"),
	}

	for i, candidateID := range candidates {
		studentID := testutil.CreateTestStudent(t, db, fmt.Sprintf("ST%d", i+1), "password123")
		testutil.CreateTestVote(t, db, studentID, p1, candidateID)
	}

	result, err := ComputePositionResult(db, p1)
	if err != nil {
		t.Fatalf("ComputePositionResult failed: %v", err)
	}

	sum := 0
	for _, c := range result.Candidates {
		if c.Percentage != 33 {
			t.Errorf("candidate %s: expected 33%%, got %d%%", c.Name, c.Percentage)
		}
		sum += c.Percentage
	}
	if sum != 99 {
		t.Errorf("expected percentages to sum to 99, got %d", sum)
	}
}

func TestComputeResults_Deterministic(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p1 := testutil.CreateTestPosition(t, db, "President")
	p2 := testutil.CreateTestPosition(t, db, "Secretary")
	c1 := testutil.CreateTestCandidate(t, db, p1, "Alice")
	c2 := testutil.CreateTestCandidate(t, db, p1, "Bob")
	testutil.CreateTestCandidate(t, db, p2, "Carol")

	s1 := testutil.CreateTestStudent(t, db, "ST1001", "password123")
	s2 := testutil.CreateTestStudent(t, db, "ST1002", "password123")
	testutil.CreateTestVote(t, db, s1, p1, c1)
	testutil.CreateTestVote(t, db, s2, p1, c2)

	first, err := ComputeResults(db)
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	second, err := ComputeResults(db)
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical ordered output with no intervening writes")
	}

	if len(first) != 2 {
		t.Fatalf("expected 2 position results, got %d", len(first))
	}
	// Ordered by position title
	if first[0].PositionTitle != "President" || first[1].PositionTitle != "Secretary" {
		t.Errorf("unexpected position order: %s, %s", first[0].PositionTitle, first[1].PositionTitle)
	}
}

func TestComputeResults_ReflectsLatestWrites(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p1 := testutil.CreateTestPosition(t, db, "President")
	c1 := testutil.CreateTestCandidate(t, db, p1, "Alice")

	before, err := ComputePositionResult(db, p1)
	if err != nil {
		t.Fatalf("ComputePositionResult failed: %v", err)
	}
	if before.TotalVotes != 0 {
		t.Errorf("expected 0 votes before write, got %d", before.TotalVotes)
	}

	studentID := testutil.CreateTestStudent(t, db, "ST1001", "password123")
	testutil.CreateTestVote(t, db, studentID, p1, c1)

	// No caching: the new vote shows up immediately
	after, err := ComputePositionResult(db, p1)
	if err != nil {
		t.Fatalf("ComputePositionResult failed: %v", err)
	}
	if after.TotalVotes != 1 {
		t.Errorf("expected fresh recomputation to see 1 vote, got %d", after.TotalVotes)
	}
}
