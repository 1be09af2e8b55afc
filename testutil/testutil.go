// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/image-vote/cliparse"
	"github.com/danielhkuo/image-vote/db"
	"github.com/danielhkuo/image-vote/storage"
)

// TestStorageKey is the storage key used by test stores
const TestStorageKey = "imageVotes"

// ErrInjected is returned by FlakyKV when a failure is switched on
var ErrInjected = errors.New("injected storage failure")

// SetupTestStorage creates a fresh sqlite-backed store in a temp directory
func SetupTestStorage(t *testing.T) storage.KV {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "votes.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	kv, err := storage.NewSQL(conn, db.DialectSQLite)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	return kv
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3318,
		StorageType: cliparse.StorageMemory,
		StorageKey:  TestStorageKey,
		NoticeTTL:   5 * time.Second,
	}
}

// FlakyKV wraps a store and fails reads or writes on demand
type FlakyKV struct {
	Inner      storage.KV
	FailReads  atomic.Bool
	FailWrites atomic.Bool
	Writes     atomic.Int32
}

func NewFlakyKV(inner storage.KV) *FlakyKV {
	if inner == nil {
		inner = storage.NewMemory()
	}
	return &FlakyKV{Inner: inner}
}

func (f *FlakyKV) Read(ctx context.Context, key string) (string, bool, error) {
	if f.FailReads.Load() {
		return "", false, &storage.Error{Op: "read", Key: key, Err: ErrInjected}
	}
	return f.Inner.Read(ctx, key)
}

func (f *FlakyKV) Write(ctx context.Context, key, value string) error {
	if f.FailWrites.Load() {
		return &storage.Error{Op: "write", Key: key, Err: ErrInjected}
	}
	f.Writes.Add(1)
	return f.Inner.Write(ctx, key, value)
}

// SeedRaw stores a raw value under key, bypassing the vote store
func SeedRaw(t *testing.T, kv storage.KV, key, value string) {
	t.Helper()
	if err := kv.Write(context.Background(), key, value); err != nil {
		t.Fatalf("Failed to seed %q: %v", key, err)
	}
}

// ReadRaw returns the raw value stored under key
func ReadRaw(t *testing.T, kv storage.KV, key string) (string, bool) {
	t.Helper()
	v, ok, err := kv.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("Failed to read %q: %v", key, err)
	}
	return v, ok
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
