// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.StorageType != StorageSQLite {
		t.Errorf("expected sqlite storage, got %s", cfg.StorageType)
	}
	if cfg.StorageURL != DefaultSQLiteURL {
		t.Errorf("expected default sqlite URL, got %s", cfg.StorageURL)
	}
	if cfg.StorageKey != "imageVotes" {
		t.Errorf("expected storage key imageVotes, got %s", cfg.StorageKey)
	}
	if cfg.NoticeTTL != 5*time.Second {
		t.Errorf("expected 5s notice TTL, got %s", cfg.NoticeTTL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORAGE_TYPE", "redis")
	os.Setenv("STORAGE_URL", "redis://localhost:6379/0")
	os.Setenv("STORAGE_KEY", "otherVotes")
	os.Setenv("NOTICE_TTL", "2s")
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageRedis {
		t.Errorf("expected redis storage, got %s", cfg.StorageType)
	}
	if cfg.StorageKey != "otherVotes" {
		t.Errorf("expected storage key otherVotes, got %s", cfg.StorageKey)
	}
	if cfg.NoticeTTL != 2*time.Second {
		t.Errorf("expected 2s notice TTL, got %s", cfg.NoticeTTL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORAGE_TYPE", "postgres")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "memory", "-k", "k1", "-notice-ttl", "250ms"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageMemory {
		t.Errorf("CLI should override env: expected memory, got %s", cfg.StorageType)
	}
	if cfg.NoticeTTL != 250*time.Millisecond {
		t.Errorf("expected 250ms notice TTL, got %s", cfg.NoticeTTL)
	}
}

func TestParseFlags_ZeroPortIsUnset(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 {
		t.Errorf("expected -p 0 to fall back to PORT 9000, got %d", cfg.Port)
	}

	os.Unsetenv("PORT")
	cfg, err = ParseFlags([]string{"-p", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected -p 0 to fall back to %d, got %d", DefaultPort, cfg.Port)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "invalid PORT env", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", args: []string{"-p", "70000"}},
		{name: "unknown storage type", args: []string{"-t", "mongo"}},
		{name: "postgres without URL", args: []string{"-t", "postgres"}},
		{name: "redis without URL", args: []string{"-t", "redis"}},
		{name: "bad notice TTL", args: []string{"-notice-ttl", "soon"}},
		{name: "negative notice TTL", args: []string{"-notice-ttl", "-1s"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STORAGE_TYPE=memory\nPORT=4000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StorageType != StorageMemory || cfg.Port != 4000 {
		t.Errorf("expected values from .env, got %+v", cfg)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing .env should not be an error, got %v", err)
	}
}
