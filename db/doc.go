// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Drivers

Two database/sql drivers are supported:

  - postgres: lib/pq, for production deployments
  - sqlite: modernc.org/sqlite (cgo-free), for development and tests

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

All SQL in this codebase uses $n placeholders in ascending order, which both
drivers accept.

# Schema

CreateSchema is idempotent (IF NOT EXISTS) and is called at startup:

	err := db.CreateSchema(conn)

The vote table carries a UNIQUE (student_id, position_id) constraint. This is
the load-bearing invariant of the whole system: one vote per student per
position is enforced by the storage layer, not by application reads, so
concurrent ballot submissions cannot double-vote.

# Conflict Detection

IsUniqueViolation recognizes the unique-constraint error of either driver
(SQLSTATE 23505 for Postgres, the constraint message for SQLite):

	if db.IsUniqueViolation(err) { ... }
*/
package db
