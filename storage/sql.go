// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/image-vote/db"
)

type sqlQueries struct {
	read  string
	write string
}

var dialectQueries = map[string]sqlQueries{
	db.DialectSQLite: {
		read: `SELECT value FROM kv WHERE key = ?`,
		write: `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	},
	db.DialectPostgres: {
		read: `SELECT value FROM kv WHERE key = $1`,
		write: `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	},
}

// SQL stores values in the kv table created by db.CreateSchema.
type SQL struct {
	conn    *sql.DB
	queries sqlQueries
}

func NewSQL(conn *sql.DB, dialect string) (*SQL, error) {
	q, ok := dialectQueries[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	return &SQL{conn: conn, queries: q}, nil
}

func (s *SQL) Read(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRowContext(ctx, s.queries.read, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("read", key, err)
	}
	return value, true, nil
}

func (s *SQL) Write(ctx context.Context, key, value string) error {
	if _, err := s.conn.ExecContext(ctx, s.queries.write, key, value); err != nil {
		return unavailable("write", key, err)
	}
	return nil
}
