// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/image-vote/catalog"
	"github.com/danielhkuo/image-vote/models"
	"github.com/danielhkuo/image-vote/votes"
)

var ErrUnknownImage = errors.New("image not in catalog")

// VoteStore is the part of votes.Store the controller needs
type VoteStore interface {
	Load(ctx context.Context) (votes.VoteMap, error)
	GetVotes(ctx context.Context) votes.VoteMap
	SetVote(ctx context.Context, imageID string, value votes.Value) (votes.Value, error)
	Reset(ctx context.Context) error
}

// Controller merges the catalog with the stored votes and routes vote
// requests back into the store.
type Controller struct {
	catalog catalog.Provider
	store   VoteStore
	ttl     time.Duration
	now     func() time.Time

	// opMu serializes Init, Vote and Reset so a reload never replaces a
	// record with a status read before a concurrent write. mu guards the
	// fields below and is never held across storage I/O.
	opMu sync.Mutex

	mu     sync.Mutex
	images []models.ImageRecord
	notice *models.Notice
}

func New(p catalog.Provider, store VoteStore, noticeTTL time.Duration) *Controller {
	return &Controller{
		catalog: p,
		store:   store,
		ttl:     noticeTTL,
		now:     time.Now,
	}
}

// Init loads the catalog and merges in the stored votes. A malformed vote
// map counts as no votes. Any other failure posts a load notice: an
// unreadable store leaves every image unvoted, a catalog failure leaves no
// images at all.
func (c *Controller) Init(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	entries, err := c.catalog.Catalog(ctx)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		c.mu.Lock()
		c.images = nil
		c.postLocked(models.NoticeLoadFailed)
		c.mu.Unlock()
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	m, loadErr := c.store.Load(ctx)
	var perr *votes.ParseError
	if errors.As(loadErr, &perr) {
		slog.Warn("ignoring malformed vote map", "error", loadErr)
		loadErr = nil
	}
	if loadErr != nil {
		slog.Error("failed to load votes", "error", loadErr)
		m = votes.VoteMap{}
	}

	images := make([]models.ImageRecord, len(entries))
	for i, e := range entries {
		images[i] = models.ImageRecord{
			ID:         e.ID,
			URL:        e.URL,
			VoteStatus: m[e.ID],
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = images
	if loadErr != nil {
		c.postLocked(models.NoticeLoadFailed)
		return fmt.Errorf("failed to load votes: %w", loadErr)
	}

	slog.Info("images loaded", "count", len(images), "voted", len(m))
	return nil
}

// Images returns a copy of the merged records in catalog order
func (c *Controller) Images() []models.ImageRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ImageRecord(nil), c.images...)
}

// Votes returns the stored vote map, empty when it cannot be read
func (c *Controller) Votes(ctx context.Context) votes.VoteMap {
	return c.store.GetVotes(ctx)
}

// Vote casts value on imageID and returns the updated record. Storage
// failures post a notice; bad input does not.
func (c *Controller) Vote(ctx context.Context, imageID string, value votes.Value) (models.ImageRecord, error) {
	if !value.Valid() {
		return models.ImageRecord{}, fmt.Errorf("%w: got %d", votes.ErrInvalidValue, int(value))
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	// Records only change under opMu, so idx stays valid across SetVote
	c.mu.Lock()
	idx := c.indexLocked(imageID)
	c.mu.Unlock()
	if idx < 0 {
		return models.ImageRecord{}, fmt.Errorf("%w: %q", ErrUnknownImage, imageID)
	}

	applied, err := c.store.SetVote(ctx, imageID, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.Error("failed to save vote", "image_id", imageID, "value", value, "error", err)
		c.postLocked(models.NoticeVoteFailed)
		return c.images[idx], err
	}

	c.images[idx].VoteStatus = applied
	slog.Info("vote saved", "image_id", imageID, "value", value, "status", applied)
	return c.images[idx], nil
}

// Reset clears every stored vote and marks all images unvoted
func (c *Controller) Reset(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	err := c.store.Reset(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.Error("failed to reset votes", "error", err)
		c.postLocked(models.NoticeVoteFailed)
		return err
	}

	for i := range c.images {
		c.images[i].VoteStatus = votes.None
	}
	slog.Info("votes reset")
	return nil
}

// Notice returns the current notice until its TTL runs out
func (c *Controller) Notice() (models.Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.notice == nil {
		return models.Notice{}, false
	}
	if !c.now().Before(c.notice.ExpiresAt) {
		c.notice = nil
		return models.Notice{}, false
	}
	return *c.notice, true
}

func (c *Controller) postLocked(message string) {
	c.notice = &models.Notice{
		Message:   message,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

func (c *Controller) indexLocked(imageID string) int {
	for i := range c.images {
		if c.images[i].ID == imageID {
			return i
		}
	}
	return -1
}
