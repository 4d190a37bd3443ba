// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Campus Ballot API server.

Campus Ballot is a student election voting platform: students authenticate
with their index number, cast a batch ballot (one candidate per position),
and live aggregated results are computed from committed votes. Each student
may vote at most once per position, enforced by the storage layer.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:ballot.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3520 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres connection string or SQLite file path
  - ADMIN_KEY_SALT (--admin-salt): Secret for election admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3520)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: ballot submission core (status gate, eligibility, coordinator)
  - tally: live result aggregation
  - handlers: HTTP request handlers (auth, voting, results, election)
  - router: route definitions using Go 1.22+ routing
  - middleware: session identity, CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: password hashing, tokens, admin keys
  - db: drivers and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
