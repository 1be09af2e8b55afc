// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the key-value stores the vote map is persisted in.

# Interface

Every backend implements KV:

	value, ok, err := kv.Read(ctx, "imageVotes")
	err = kv.Write(ctx, "imageVotes", `{"image1":1}`)

A missing key is reported as ok=false with a nil error. Backend failures
match ErrUnavailable:

	if errors.Is(err, storage.ErrUnavailable) { ... }

# Backends

  - Memory: process-local map, used by tests and -t memory
  - SQL: kv table over database/sql (sqlite via modernc.org/sqlite,
    postgres via lib/pq)
  - Redis: plain GET/SET through go-redis

Open picks one from configuration:

	kv, closeFn, err := storage.Open(ctx, cfg.StorageType, cfg.StorageURL)
	defer closeFn()

Writes replace the whole value. There is no compare-and-swap, so two
processes sharing a key will overwrite each other.
*/
package storage
