// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

Load an optional .env file, then parse flags:

	if err := cliparse.LoadDotEnv(""); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StorageType: memory, sqlite, postgres or redis (default: sqlite)
  - StorageURL: Backend connection string (default for sqlite: file:votes.db)
  - StorageKey: Key holding the serialized vote map (default: imageVotes)
  - NoticeTTL: How long an error notice stays visible (default: 5s)
  - LogLevel: slog level (default: info)

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	STORAGE_TYPE → -t
	STORAGE_URL  → -d
	STORAGE_KEY  → -k
	NOTICE_TTL   → -notice-ttl
	LOG_LEVEL    → -log-level

CLI flags take precedence over environment variables, and environment
variables take precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - STORAGE_TYPE is not one of the known backends
  - STORAGE_URL is missing for postgres or redis
  - PORT, NOTICE_TTL or LOG_LEVEL cannot be parsed
*/
package cliparse
