// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/image-vote/cliparse"
	"github.com/danielhkuo/image-vote/controller"
	"github.com/danielhkuo/image-vote/handlers"
	"github.com/danielhkuo/image-vote/middleware"
)

func NewRouter(ctrl *controller.Controller, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	imageHandler := handlers.NewImageHandler(ctrl, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Images and their vote status
	mux.HandleFunc("GET /images", middleware.WithLogging(imageHandler.ListImages))
	mux.HandleFunc("POST /images/reload", middleware.WithLogging(imageHandler.Reload))
	mux.HandleFunc("POST /images/{id}/vote", middleware.WithLogging(imageHandler.CastVote))

	// Raw vote map
	mux.HandleFunc("GET /votes", middleware.WithLogging(imageHandler.GetVotes))
	mux.HandleFunc("DELETE /votes", middleware.WithLogging(imageHandler.ResetVotes))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-vote API v1"))
	})

	return mux
}

// Wrap applies the middleware shared by every route
func Wrap(mux http.Handler) http.Handler {
	return middleware.WithRequestID(middleware.CORS(mux))
}
