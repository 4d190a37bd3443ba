// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, token generation, and admin key
utilities.

# Passwords

Student passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(password, hash)

CheckPassword returns ErrInvalidCredentials on any mismatch so the HTTP layer
can return a uniform 401 without leaking detail.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded and stored server-side in the session
table; the middleware resolves them to a student identity per request.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys scoped to
an election:

	adminKey := auth.GenerateAdminKey(electionID, salt)
	err := auth.ValidateAdminKey(electionID, adminKey, salt)

Since the key is deterministic, it can be validated without storing it in the
database. The key is returned once when the election is created.

# ID Generation

Database record IDs are random UUIDs:

	id := auth.NewID()
*/
package auth
