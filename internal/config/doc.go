// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for noteplus.
//
// Configuration is TOML with built-in defaults, NOTEPLUS_* environment
// overrides, and validation that reports every invalid field at once.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - OllamaConfig: Inference endpoint URL, model and probe timeout
//   - SuggestConfig: Debounce windows, timeouts and decoding options
//   - LogConfig: Log file path and level
//
// # Configuration Precedence
//
//   - Command line flags (applied by the caller)
//   - Environment variables (NOTEPLUS_*)
//   - ~/.noteplus/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	timeout := cfg.Suggest.CorrectionTimeout()
package config
