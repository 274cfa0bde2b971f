// Package config loads fordview settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/fordview/config.toml, falling back to
// ~/.config/fordview/config.toml. A missing file yields [Default].
//
//	log_level = "info"
//	default_mode = "directed"
//
//	[replay]
//	interval = "600ms"
//
//	[server]
//	addr = ":8080"
//
//	[store]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[cache]
//	enabled = true
//	ttl = "24h"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/store"
)

const appName = "fordview"

// Config is the full set of settings.
type Config struct {
	LogLevel    string `toml:"log_level"`
	DefaultMode string `toml:"default_mode"`

	Replay ReplayConfig `toml:"replay"`
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
}

// ReplayConfig controls the replay animation.
type ReplayConfig struct {
	Interval Duration `toml:"interval"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects the graph store used by the HTTP API.
type StoreConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// CacheConfig controls result caching.
type CacheConfig struct {
	Enabled   bool     `toml:"enabled"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"` // empty uses the file cache
}

// Duration is a time.Duration written as a Go duration string ("1.5s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "info",
		DefaultMode: "directed",
		Replay:      ReplayConfig{Interval: Duration{600 * time.Millisecond}},
		Server:      ServerConfig{Addr: ":8080"},
		Store: StoreConfig{
			Backend:       store.BackendFile,
			MongoDatabase: store.DefaultMongoDatabase,
		},
		Cache: CacheConfig{Enabled: true, TTL: Duration{24 * time.Hour}},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path over [Default]. An empty path means [Path]. A missing file
// is not an error unless path was given explicitly. Keys the file sets but
// Config does not know are reported as an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

var backends = []string{store.BackendMemory, store.BackendFile, store.BackendRedis, store.BackendMongo}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := graph.ParseMode(c.DefaultMode); err != nil {
		return fmt.Errorf("default_mode: %w", err)
	}
	if c.Replay.Interval.Duration <= 0 {
		return fmt.Errorf("replay.interval must be positive, got %s", c.Replay.Interval)
	}
	if !slices.Contains(backends, c.Store.Backend) {
		return fmt.Errorf("store.backend %q is not one of %s", c.Store.Backend, strings.Join(backends, ", "))
	}
	if c.Store.Backend == store.BackendRedis && c.Store.RedisAddr == "" {
		return errors.New("store.redis_addr is required for the redis backend")
	}
	if c.Store.Backend == store.BackendMongo && c.Store.MongoURI == "" {
		return errors.New("store.mongo_uri is required for the mongo backend")
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// Mode returns the configured default graph mode.
func (c Config) Mode() graph.Mode {
	m, err := graph.ParseMode(c.DefaultMode)
	if err != nil {
		return graph.Directed
	}
	return m
}

// StoreOptions converts the store section for store.Open.
func (c Config) StoreOptions() store.Config {
	return store.Config{
		Backend:       c.Store.Backend,
		Dir:           c.Store.Dir,
		RedisAddr:     c.Store.RedisAddr,
		RedisPassword: c.Store.RedisPassword,
		RedisDB:       c.Store.RedisDB,
		MongoURI:      c.Store.MongoURI,
		MongoDatabase: c.Store.MongoDatabase,
	}
}
