// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Campus Ballot API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Student login, logout, and identity
  - VotingHandler: Ballot submission and the caller's vote history
  - ResultsHandler: Positions, live tallies, per-position results
  - ElectionHandler: Election status and admin lifecycle transitions

Handlers are created via constructor functions that accept *sql.DB and Config:

	votingHandler := handlers.NewVotingHandler(db, cfg)

# Election Lifecycle

Elections progress through three states: upcoming → active → closed

	POST /admin/elections         → CreateElection (returns admin_key)
	PUT  /admin/election/status   → UpdateStatus (X-Admin-Key required)
	GET  /election/status         → GetStatus (public)

# Voting Flow

Students authenticate, then submit one batch ballot:

	POST /auth/login → Login (returns session token)
	POST /votes      → SubmitBallot (all-or-nothing across positions)
	GET  /votes/me   → GetMyVotes

Authenticated operations take the session token from
"Authorization: Bearer ..." or the X-Session-Token header.

Ballot failure kinds map to status codes: malformed input, duplicate
positions, and candidate/position mismatches are 400; an inactive election
is 403; unknown references are 404; an existing vote for any selected
position is 409 and nothing from that ballot is committed.

# Results

Tallies are recomputed from vote rows on every request (see package tally):

	GET /results                  → all positions
	GET /results/position/{id}    → one position
	GET /positions                → positions with candidates (no counts)
*/
package handlers
