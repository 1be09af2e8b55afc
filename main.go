package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/image-vote/catalog"
	"github.com/danielhkuo/image-vote/cliparse"
	"github.com/danielhkuo/image-vote/controller"
	"github.com/danielhkuo/image-vote/router"
	"github.com/danielhkuo/image-vote/storage"
	"github.com/danielhkuo/image-vote/votes"
)

func main() {
	var err error

	// .env first so flags and real env vars win
	if err := cliparse.LoadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	kv, closeStorage, err := storage.Open(ctx, cfg.StorageType, cfg.StorageURL)
	cancel()
	if err != nil {
		slog.Error("storage setup failed", "type", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	cat, err := catalog.Default()
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	// A failed first load is shown to the user as a notice, not fatal
	ctrl := controller.New(cat, votes.NewStore(kv, cfg.StorageKey), cfg.NoticeTTL)
	if err := ctrl.Init(context.Background()); err != nil {
		slog.Warn("initial load failed", "error", err)
	}

	// Create router
	mux := router.NewRouter(ctrl, cfg)

	// Create server
	server := http.Server{
		Handler: router.Wrap(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "storage", cfg.StorageType, "key", cfg.StorageKey)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
