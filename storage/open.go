// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/image-vote/db"
)

// Backend names accepted by Open
const (
	TypeMemory   = "memory"
	TypeSQLite   = db.DialectSQLite
	TypePostgres = db.DialectPostgres
	TypeRedis    = "redis"
)

// Open connects to the backend named by storageType. The returned close
// function releases the connection and is never nil when err is nil.
func Open(ctx context.Context, storageType, url string) (KV, func() error, error) {
	switch storageType {
	case TypeMemory:
		slog.Warn("using in-memory storage, votes are lost on restart")
		return NewMemory(), func() error { return nil }, nil

	case TypeSQLite, TypePostgres:
		return openSQL(ctx, storageType, url)

	case TypeRedis:
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		slog.Info("storage ready", "type", storageType, "addr", opts.Addr)
		return NewRedis(client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", storageType)
	}
}

func openSQL(ctx context.Context, dialect, url string) (KV, func() error, error) {
	// Both drivers register under the dialect name
	conn, err := sql.Open(dialect, url)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, nil, err
	}

	kv, err := NewSQL(conn, dialect)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	slog.Info("storage ready", "type", dialect)
	return kv, conn.Close, nil
}
