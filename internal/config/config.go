// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/euii-ii/NotepadAI/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete noteplus configuration.
type Config struct {
	// Ollama (inference endpoint) configuration
	Ollama OllamaConfig `toml:"ollama"`

	// Text-assist tuning
	Suggest SuggestConfig `toml:"suggest"`

	// Log file configuration
	Log LogConfig `toml:"log"`
}

// OllamaConfig contains local Ollama configuration.
type OllamaConfig struct {
	// URL is the base URL of the Ollama server
	URL string `toml:"url"`
	// Model is the model used for both suggestion channels
	Model string `toml:"model"`
	// ProbeTimeoutMs bounds the startup connectivity probe
	ProbeTimeoutMs int `toml:"probe_timeout_ms"`
}

// SuggestConfig tunes the autocorrect and next-word channels.
type SuggestConfig struct {
	// MinWordLength is the shortest current word that triggers autocorrect
	MinWordLength int `toml:"min_word_length"`

	CorrectionDebounceMs int `toml:"correction_debounce_ms"`
	NextWordDebounceMs   int `toml:"next_word_debounce_ms"`
	CorrectionTimeoutMs  int `toml:"correction_timeout_ms"`
	NextWordTimeoutMs    int `toml:"next_word_timeout_ms"`

	// Decoding options sent with every request (temperature is always 0)
	NumPredict int     `toml:"num_predict"`
	TopK       int     `toml:"top_k"`
	TopP       float64 `toml:"top_p"`

	// RequestsPerSecond and Burst configure the outbound rate limiter
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File is the log file path (empty = ~/.noteplus/noteplus.log)
	File string `toml:"file"`
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Ollama: OllamaConfig{
			URL:            "http://127.0.0.1:11434",
			Model:          "gemma2:2b",
			ProbeTimeoutMs: 5000,
		},
		Suggest: SuggestConfig{
			MinWordLength:        3,
			CorrectionDebounceMs: 500,
			NextWordDebounceMs:   100,
			CorrectionTimeoutMs:  8000,  // 8 seconds
			NextWordTimeoutMs:    10000, // 10 seconds
			NumPredict:           3,     // very short replies
			TopK:                 5,
			TopP:                 0.8,
			RequestsPerSecond:    4,
			Burst:                2,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// =============================================================================
// DURATION ACCESSORS
// =============================================================================

// ProbeTimeout returns the connectivity probe timeout.
func (c OllamaConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMs) * time.Millisecond
}

// CorrectionDebounce returns the autocorrect debounce window.
func (c SuggestConfig) CorrectionDebounce() time.Duration {
	return time.Duration(c.CorrectionDebounceMs) * time.Millisecond
}

// NextWordDebounce returns the next-word debounce window.
func (c SuggestConfig) NextWordDebounce() time.Duration {
	return time.Duration(c.NextWordDebounceMs) * time.Millisecond
}

// CorrectionTimeout returns the autocorrect request timeout.
func (c SuggestConfig) CorrectionTimeout() time.Duration {
	return time.Duration(c.CorrectionTimeoutMs) * time.Millisecond
}

// NextWordTimeout returns the next-word request timeout.
func (c SuggestConfig) NextWordTimeout() time.Duration {
	return time.Duration(c.NextWordTimeoutMs) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the noteplus configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".noteplus"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the configured log file, or the default inside ConfigDir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "noteplus.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file. A missing file
// yields defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. A missing file is not an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadTOML(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// WriteTOML encodes cfg as TOML and writes it to path atomically, creating
// the parent directory if needed.
func (c *Config) WriteTOML(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0o600, 0o700); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}

// SetDefaults fills zero values left by a partial file with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Ollama.URL == "" {
		c.Ollama.URL = defaults.Ollama.URL
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = defaults.Ollama.Model
	}
	if c.Ollama.ProbeTimeoutMs == 0 {
		c.Ollama.ProbeTimeoutMs = defaults.Ollama.ProbeTimeoutMs
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies NOTEPLUS_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	// NOTEPLUS_OLLAMA_URL
	if u := os.Getenv("NOTEPLUS_OLLAMA_URL"); u != "" {
		c.Ollama.URL = u
	}

	// NOTEPLUS_MODEL
	if model := os.Getenv("NOTEPLUS_MODEL"); model != "" {
		c.Ollama.Model = model
	}

	// NOTEPLUS_LOG_LEVEL
	if level := os.Getenv("NOTEPLUS_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}

	// NOTEPLUS_LOG_FILE
	if file := os.Getenv("NOTEPLUS_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	u, err := url.Parse(c.Ollama.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "ollama.url",
			Message: fmt.Sprintf("invalid URL '%s', must be http(s)://host[:port]", c.Ollama.URL),
		})
	}
	if strings.TrimSpace(c.Ollama.Model) == "" {
		errs = append(errs, ValidationError{Field: "ollama.model", Message: "must not be empty"})
	}

	positive := []struct {
		field string
		value int
	}{
		{"ollama.probe_timeout_ms", c.Ollama.ProbeTimeoutMs},
		{"suggest.min_word_length", c.Suggest.MinWordLength},
		{"suggest.correction_debounce_ms", c.Suggest.CorrectionDebounceMs},
		{"suggest.next_word_debounce_ms", c.Suggest.NextWordDebounceMs},
		{"suggest.correction_timeout_ms", c.Suggest.CorrectionTimeoutMs},
		{"suggest.next_word_timeout_ms", c.Suggest.NextWordTimeoutMs},
		{"suggest.num_predict", c.Suggest.NumPredict},
		{"suggest.top_k", c.Suggest.TopK},
		{"suggest.burst", c.Suggest.Burst},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Message: fmt.Sprintf("must be positive, got %d", p.value),
			})
		}
	}

	if c.Suggest.TopP <= 0 || c.Suggest.TopP > 1 {
		errs = append(errs, ValidationError{
			Field:   "suggest.top_p",
			Message: fmt.Sprintf("must be in (0, 1], got %g", c.Suggest.TopP),
		})
	}
	if c.Suggest.RequestsPerSecond <= 0 {
		errs = append(errs, ValidationError{
			Field:   "suggest.requests_per_second",
			Message: fmt.Sprintf("must be positive, got %g", c.Suggest.RequestsPerSecond),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
