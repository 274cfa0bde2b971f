package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fordview/pkg/graph"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing file should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
default_mode = "undirected"

[replay]
interval = "250ms"

[server]
addr = "127.0.0.1:9000"

[store]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2

[cache]
enabled = false
ttl = "1h"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level = %v", cfg.Level())
	}
	if cfg.Mode() != graph.Undirected {
		t.Errorf("Mode = %v", cfg.Mode())
	}
	if cfg.Replay.Interval.Duration != 250*time.Millisecond {
		t.Errorf("interval = %v", cfg.Replay.Interval)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	so := cfg.StoreOptions()
	if so.Backend != "redis" || so.RedisAddr != "localhost:6379" || so.RedisDB != 2 {
		t.Errorf("store = %+v", so)
	}
	if cfg.Cache.Enabled || cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
}

func TestLoadXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "fordview"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fordview", "config.toml"), []byte(`default_mode = "u"`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != graph.Undirected {
		t.Errorf("Mode = %v", cfg.Mode())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"unknown key", `colour = "red"`, "unknown keys: colour"},
		{"bad mode", `default_mode = "sideways"`, "default_mode"},
		{"bad level", `log_level = "loud"`, "log_level"},
		{"bad duration", "[replay]\ninterval = \"soon\"", "invalid duration"},
		{"zero interval", "[replay]\ninterval = \"0s\"", "replay.interval"},
		{"bad backend", "[store]\nbackend = \"sqlite\"", "store.backend"},
		{"redis without addr", "[store]\nbackend = \"redis\"", "redis_addr"},
		{"mongo without uri", "[store]\nbackend = \"mongo\"", "mongo_uri"},
		{"negative ttl", "[cache]\nttl = \"-1m\"", "cache.ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
