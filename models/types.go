package models

import (
	"time"

	"github.com/danielhkuo/image-vote/votes"
)

// User-facing notice messages
const (
	NoticeLoadFailed = "Failed to load images. Please try again later."
	NoticeVoteFailed = "Failed to save vote. Please try again later."
)

// Request types

// value is 1 (upvote) or -1 (downvote)
type VoteRequest struct {
	Value votes.Value `json:"value"`
}

// Response types

type ImagesResponse struct {
	Images []ImageRecord `json:"images"`
	Notice *Notice       `json:"notice,omitempty"`
}

type VoteResponse struct {
	Image ImageRecord `json:"image"`
}

type ResetResponse struct {
	Message string `json:"message"`
}

// Domain types

// ImageRecord is a catalog entry merged with its current vote.
// VoteStatus is derived from the vote store and never persisted itself.
type ImageRecord struct {
	ID         string      `json:"id"`
	URL        string      `json:"url"`
	VoteStatus votes.Value `json:"vote_status"` // 1 up, -1 down, 0 none
}

// Notice is a transient error message shown until ExpiresAt
type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
