// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the image vote server.

The server backs a single-user voting widget: a fixed catalog of images,
each of which can be upvoted, downvoted, or left alone. Votes live in one
JSON object under a single storage key.

# Starting the Server

With the defaults (sqlite in ./votes.db, port 3318):

	go run .

Or with flags:

	go run . -p 8080 -t redis -d redis://localhost:6379/0

A .env file in the working directory (or the path in ENV_FILE) is loaded
before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORAGE_TYPE (-t): memory, sqlite, postgres or redis (default: sqlite)
  - STORAGE_URL (-d): Backend connection string
  - STORAGE_KEY (-k): Key holding the vote map (default: imageVotes)
  - NOTICE_TTL (-notice-ttl): Error notice lifetime (default: 5s)
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - votes: Vote map and toggle rules
  - storage: Key-value backends (memory, sqlite, postgres, redis)
  - catalog: Embedded image catalog
  - controller: Merged image records, vote dispatch, notices
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request ids, CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema creation for the SQL backends
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
