// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags override environment variables, which override defaults. A .env
file in the working directory is loaded first (via godotenv) so local
development needs no exported variables.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

Required:

  - DATABASE_URL (-d): connection string (Postgres URL or SQLite file path)
  - ADMIN_KEY_SALT (--admin-salt): secret for election admin key HMAC

Optional:

  - PORT (-p): server port (default: 3520)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

Missing secrets fail fast at startup rather than at first use.
*/
package cliparse
