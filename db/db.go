// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. Supported types are "postgres"
// (lib/pq) and "sqlite" (modernc.org/sqlite, cgo-free).
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case "postgres":
		return sql.Open("postgres", databaseURL)
	case "sqlite":
		conn, err := sql.Open("sqlite", databaseURL)
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer; a one-connection pool avoids
		// SQLITE_BUSY under concurrent requests.
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q (want postgres or sqlite)", databaseType)
	}
}

// IsUniqueViolation reports whether err is a unique-constraint violation from
// either supported driver. The constraint error is the source of truth for
// vote conflicts; callers must not pre-check with a read instead.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
