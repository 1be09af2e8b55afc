// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed catalog.json
var embedded []byte

var (
	ErrEmptyID     = errors.New("catalog entry has an empty id")
	ErrEmptyURL    = errors.New("catalog entry has an empty url")
	ErrDuplicateID = errors.New("duplicate catalog id")
)

// Entry is one image available for voting.
type Entry struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Provider returns the ordered catalog.
type Provider interface {
	Catalog(ctx context.Context) ([]Entry, error)
}

// Static serves a fixed list of entries.
type Static struct {
	entries []Entry
}

// NewStatic validates entries and keeps a copy of them.
func NewStatic(entries []Entry) (*Static, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return &Static{entries: append([]Entry(nil), entries...)}, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Static, error) {
	var entries []Entry
	if err := json.Unmarshal(embedded, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	return NewStatic(entries)
}

func (s *Static) Catalog(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Entry(nil), s.entries...), nil
}

// Validate rejects entries with missing fields or repeated ids.
func Validate(entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if e.URL == "" {
			return fmt.Errorf("entry %q: %w", e.ID, ErrEmptyURL)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
