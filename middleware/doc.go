// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Identity

RequireStudent guards authenticated routes. It resolves the session token
(Authorization Bearer header, or X-Session-Token) against the session table
and attaches the student ID to the request context:

	mux.HandleFunc("POST /votes",
		middleware.RequireStudent(db, votingHandler.SubmitBallot))

Handlers read the identity back with middleware.StudentID(r). Requests with
a missing, unknown, or expired token get a 401 and never reach the handler,
so the voting core always receives a verified student ID as an explicit
parameter.

# Helpers

JSONResponse, ErrorResponse, and ParseJSONBody standardize the JSON wire
format. WithLogging logs request start/completion with duration via slog.
CORS handles cross-origin requests and preflight. GetClientIP resolves the
originating address behind proxies.
*/
package middleware
