// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL storage backends.

# Schema Creation

CreateSchema initializes the key-value table for a dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv: one row per storage key (key, value, updated_at)

The vote map lives in a single row keyed by the configured storage key.
*/
package db
