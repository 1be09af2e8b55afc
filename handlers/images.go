// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/image-vote/cliparse"
	"github.com/danielhkuo/image-vote/controller"
	"github.com/danielhkuo/image-vote/middleware"
	"github.com/danielhkuo/image-vote/models"
	"github.com/danielhkuo/image-vote/votes"
)

type ImageHandler struct {
	ctrl *controller.Controller
	cfg  cliparse.Config
}

func NewImageHandler(ctrl *controller.Controller, cfg cliparse.Config) *ImageHandler {
	return &ImageHandler{ctrl: ctrl, cfg: cfg}
}

// ListImages handles GET /images
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	resp := models.ImagesResponse{Images: h.ctrl.Images()}
	if resp.Images == nil {
		resp.Images = []models.ImageRecord{}
	}
	if notice, ok := h.ctrl.Notice(); ok {
		resp.Notice = &notice
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CastVote handles POST /images/{id}/vote
func (h *ImageHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	imageID := r.PathValue("id")
	if imageID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image id is required")
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.ctrl.Vote(r.Context(), imageID, req.Value)
	switch {
	case errors.Is(err, votes.ErrInvalidValue):
		middleware.ErrorResponse(w, http.StatusBadRequest, "value must be 1 or -1")
		return
	case errors.Is(err, controller.ErrUnknownImage):
		middleware.ErrorResponse(w, http.StatusNotFound, "Image not found")
		return
	case err != nil:
		// Already logged by the controller
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, models.NoticeVoteFailed)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Image: rec})
}

// GetVotes handles GET /votes
func (h *ImageHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.ctrl.Votes(r.Context()))
}

// ResetVotes handles DELETE /votes
func (h *ImageHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Reset(r.Context()); err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, models.NoticeVoteFailed)
		return
	}

	slog.Info("votes cleared", "key", h.cfg.StorageKey)
	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{Message: "Votes cleared"})
}

// Reload handles POST /images/reload and re-runs the initial load
func (h *ImageHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Init(r.Context()); err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, models.NoticeLoadFailed)
		return
	}
	h.ListImages(w, r)
}
