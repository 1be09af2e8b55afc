// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is matched by every error a backend returns when the
// underlying store could not be read or written.
var ErrUnavailable = errors.New("storage unavailable")

// KV is a string key-value store. Read reports ok=false with a nil error
// when the key has never been written.
type KV interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// Error records the failed operation and the backend error.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

func unavailable(op, key string, err error) error {
	return &Error{Op: op, Key: key, Err: err}
}
