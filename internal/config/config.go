// Package config loads sentiscope settings. Settings are read-only at
// runtime; nothing the user does in a session is written back.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/subosito/gotenv"
)

// Backend names.
const (
	BackendStatic  = "static"
	BackendLexicon = "lexicon"
)

// Config is the application configuration.
type Config struct {
	Backend         string         `json:"backend"`
	CorpusPath      string         `json:"corpus_path"`
	UI              UIConfig       `json:"ui"`
	Analysis        AnalysisConfig `json:"analysis"`
	LogLevel        string         `json:"log_level"`
	KnownSubreddits []string       `json:"known_subreddits"`
}

// UIConfig holds display preferences.
type UIConfig struct {
	Theme      string `json:"theme"`       // "light" or "dark"
	TruncateAt int    `json:"truncate_at"` // characters before "Show more"
}

// AnalysisConfig tunes calls to the analysis backend.
type AnalysisConfig struct {
	MinIntervalMs    int `json:"min_interval_ms"`
	TimeoutMs        int `json:"timeout_ms"`
	ItemsPerCategory int `json:"items_per_category"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend:    BackendStatic,
		CorpusPath: filepath.Join(DataDir(), "corpus.db"),
		UI: UIConfig{
			Theme:      "light",
			TruncateAt: 100,
		},
		Analysis: AnalysisConfig{
			MinIntervalMs:    750,
			TimeoutMs:        10000,
			ItemsPerCategory: 10,
		},
		LogLevel: "info",
		KnownSubreddits: []string{
			"AskReddit", "worldnews", "news", "technology", "science",
			"programming", "golang", "MachineLearning", "Futurology", "gaming",
		},
	}
}

// DataDir is ~/.sentiscope.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sentiscope"
	}
	return filepath.Join(home, ".sentiscope")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// EventLogPath is the JSONL event trail written by the TUI.
func EventLogPath() string {
	return filepath.Join(DataDir(), "sentiscope.events.jsonl")
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error. A .env file in the working directory is
// loaded first if present; it never overrides variables already set.
func Load(path string) (*Config, error) {
	_ = gotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SENTISCOPE_BACKEND"); v != "" {
		c.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SENTISCOPE_CORPUS"); v != "" {
		c.CorpusPath = v
	}
	if v := os.Getenv("SENTISCOPE_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SENTISCOPE_TRUNCATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.TruncateAt = n
		}
	}
	if v := os.Getenv("SENTISCOPE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects settings the app cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendStatic, BackendLexicon:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendStatic, BackendLexicon)
	}
	if c.Backend == BackendLexicon && c.CorpusPath == "" {
		return errors.New("lexicon backend needs corpus_path")
	}
	if c.UI.TruncateAt <= 0 {
		c.UI.TruncateAt = 100
	}
	return nil
}

// MinInterval is the minimum spacing between analysis requests.
func (c *Config) MinInterval() time.Duration {
	return time.Duration(c.Analysis.MinIntervalMs) * time.Millisecond
}

// Timeout bounds a single analysis request. Zero means no timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Analysis.TimeoutMs) * time.Millisecond
}
