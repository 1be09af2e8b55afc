// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/image-vote/storage"
)

// DefaultKey is the storage key the vote map is kept under.
const DefaultKey = "imageVotes"

var (
	ErrInvalidValue = errors.New("vote value must be 1 or -1")
	ErrEmptyImageID = errors.New("image id is required")
)

// ParseError means the stored vote map could not be decoded.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed vote map under %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store owns the vote map. Every mutation rewrites the whole map under one
// key, so callers in the same process are serialized by mu. Writers in other
// processes are not coordinated with.
type Store struct {
	kv  storage.KV
	key string
	mu  sync.Mutex
}

func NewStore(kv storage.KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key}
}

// Key returns the storage key the map is persisted under.
func (s *Store) Key() string {
	return s.key
}

// Load reads and decodes the stored map. A missing key yields an empty map.
// Decoding failures are returned as *ParseError.
func (s *Store) Load(ctx context.Context) (VoteMap, error) {
	raw, ok, err := s.kv.Read(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}
	if !ok || raw == "" {
		return VoteMap{}, nil
	}
	return s.decode(raw)
}

// GetVotes is Load with every failure collapsed to an empty map.
func (s *Store) GetVotes(ctx context.Context) VoteMap {
	m, err := s.Load(ctx)
	if err != nil {
		slog.Warn("falling back to empty vote map", "key", s.key, "error", err)
		return VoteMap{}
	}
	return m
}

// SetVote toggles the vote on imageID and returns the value now in effect.
// Casting the stored value again clears it (None); casting the opposite
// value replaces it. If the write fails the previous value is returned
// alongside the error, so the caller never reports an unsaved vote.
func (s *Store) SetVote(ctx context.Context, imageID string, value Value) (Value, error) {
	if imageID == "" {
		return None, ErrEmptyImageID
	}
	if !value.Valid() {
		return None, fmt.Errorf("%w: got %d", ErrInvalidValue, int(value))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.Load(ctx)
	var perr *ParseError
	if errors.As(err, &perr) {
		// The corrupt blob is replaced by the write below
		slog.Warn("overwriting malformed vote map", "key", s.key, "error", err)
		m, err = VoteMap{}, nil
	}
	if err != nil {
		return None, err
	}

	prev := m[imageID]
	applied := value
	if prev == value {
		delete(m, imageID)
		applied = None
	} else {
		m[imageID] = value
	}

	if err := s.save(ctx, m); err != nil {
		return prev, err
	}

	slog.Debug("vote applied", "image_id", imageID, "previous", prev, "applied", applied)
	return applied, nil
}

// Reset clears every vote.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, VoteMap{})
}

func (s *Store) save(ctx context.Context, m VoteMap) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode votes: %w", err)
	}
	if err := s.kv.Write(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("failed to write votes: %w", err)
	}
	return nil
}

func (s *Store) decode(raw string) (VoteMap, error) {
	var stored map[string]int
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, &ParseError{Key: s.key, Err: err}
	}

	m := make(VoteMap, len(stored))
	for id, n := range stored {
		v := Value(n)
		switch {
		case v == None:
			// Older writers may have stored explicit zeros
			continue
		case !v.Valid():
			return nil, &ParseError{Key: s.key, Err: fmt.Errorf("image %q has vote %d", id, n)}
		}
		m[id] = v
	}
	return m, nil
}
