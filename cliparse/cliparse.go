// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

const (
	DefaultPort       = 3318
	DefaultStorageKey = "imageVotes"
	DefaultSQLiteURL  = "file:votes.db"
	DefaultNoticeTTL  = 5 * time.Second
)

type Config struct {
	Port        int
	StorageType string
	StorageURL  string
	StorageKey  string
	NoticeTTL   time.Duration
	LogLevel    slog.Level
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are left alone and a missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment.
// A port of 0, passed or not, counts as unset and falls back to PORT and
// then DefaultPort.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttl, level string

	fs := flag.NewFlagSet("image-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorageType, "t", "", "Storage type (memory, sqlite, postgres or redis)")
	fs.StringVar(&cfg.StorageURL, "d", "", "Storage URL")
	fs.StringVar(&cfg.StorageKey, "k", "", "Storage key holding the vote map")
	fs.StringVar(&ttl, "notice-ttl", "", "How long an error notice stays visible")
	fs.StringVar(&level, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.StorageType == "" {
		cfg.StorageType = os.Getenv("STORAGE_TYPE")
		if cfg.StorageType == "" {
			cfg.StorageType = StorageSQLite
		}
	}
	cfg.StorageType = strings.ToLower(cfg.StorageType)

	if cfg.StorageURL == "" {
		cfg.StorageURL = os.Getenv("STORAGE_URL")
	}
	switch cfg.StorageType {
	case StorageMemory:
	case StorageSQLite:
		if cfg.StorageURL == "" {
			cfg.StorageURL = DefaultSQLiteURL
		}
	case StoragePostgres, StorageRedis:
		if cfg.StorageURL == "" {
			return Config{}, fmt.Errorf("storage URL required for %s (use -d or STORAGE_URL env)", cfg.StorageType)
		}
	default:
		return Config{}, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	if cfg.StorageKey == "" {
		cfg.StorageKey = os.Getenv("STORAGE_KEY")
		if cfg.StorageKey == "" {
			cfg.StorageKey = DefaultStorageKey
		}
	}

	if ttl == "" {
		ttl = os.Getenv("NOTICE_TTL")
	}
	cfg.NoticeTTL = DefaultNoticeTTL
	if ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid notice TTL %q", ttl)
		}
		cfg.NoticeTTL = d
	}

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", level)
		}
	}

	return cfg, nil
}
