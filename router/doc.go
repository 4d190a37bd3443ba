// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method routing on the standard ServeMux:

	mux := router.NewRouter(db, cfg)

Public routes: health, election status, positions, results. Student routes
(ballot submission, vote history, logout, identity) are wrapped in
middleware.RequireStudent, which resolves the session token to a student ID
before the handler runs. Admin routes authenticate per-request with the
X-Admin-Key header inside the handler, since the key is scoped to the
election row rather than to a session.
*/
package router
