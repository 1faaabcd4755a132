// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the noteplus command line.
//
// Running noteplus with no arguments starts the full-screen notes TUI.
// The subcommands are one-shot helpers that reuse the same suggestion
// pipeline against the configured Ollama endpoint:
//
//	noteplus probe           check the endpoint and list installed models
//	noteplus correct helo    spell-check a single word
//	noteplus next I am       predict the word after a phrase
//	noteplus config init     write the default config file
//	noteplus config show     print the effective configuration
//	noteplus version         print build information
//
// Persistent flags (--config, --ollama-url, --model, --debug) override the
// config file and NOTEPLUS_* environment variables.
package cli
