// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared data types for the Campus Ballot API.

# Domain Types

Core entities stored in the database:

  - Student: a registered voter, identified by a unique index number
  - Election: the singleton election row with lifecycle status
  - Position: an electable office (e.g. "President")
  - Candidate: belongs to exactly one position
  - Vote: one student's choice for one position; immutable once created

Sensitive fields (password hashes, voter linkage on votes) carry `json:"-"`
and are never serialized.

# Election Lifecycle

Elections progress through three states: upcoming → active → closed.
Voting is permitted only while the status is "active".

# Tally Types

PositionResult and CandidateResult are derived, never stored. They are
recomputed from vote rows on every request, so results always reflect the
latest committed state. Candidate percentages are rounded independently and
are not guaranteed to sum to exactly 100.

# Request/Response Types

All request and response bodies use snake_case JSON field names. Error
responses share a single shape:

	{"error": "Conflict", "message": "Already voted for this position"}
*/
package models
