// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/config"
	"github.com/euii-ii/NotepadAI/internal/logging"
	"github.com/euii-ii/NotepadAI/internal/ollama"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	ollamaURL  string
	model      string
	debug      bool
}

// loadConfig loads the config file, then applies flag overrides on top of
// the file and environment values.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if f.ollamaURL != "" {
		cfg.Ollama.URL = f.ollamaURL
	}
	if f.model != "" {
		cfg.Ollama.Model = f.model
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvedConfigPath returns the file the config commands read and write.
func (f *globalFlags) resolvedConfigPath() (string, error) {
	if f.configPath != "" {
		return f.configPath, nil
	}
	return config.ConfigPathTOML()
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCommand builds the noteplus command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "noteplus",
		Short: "A notes TUI with local autocorrect and next-word suggestions",
		Long: `NotePlus is a terminal notes app. While you type, a local Ollama model
spell-checks the current word and predicts the next one.

Run without arguments to open the TUI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default ~/.noteplus/config.toml)")
	pf.StringVar(&flags.ollamaURL, "ollama-url", "", "Ollama base URL")
	pf.StringVarP(&flags.model, "model", "m", "", "model used for suggestions")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newProbeCommand(flags),
		newCorrectCommand(flags),
		newNextCommand(flags),
		newConfigCommand(flags),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// newClient builds an Ollama client for cfg.
func newClient(cfg *config.Config) *ollama.Client {
	return ollama.NewClientWithConfig(&ollama.ClientConfig{
		BaseURL:      cfg.Ollama.URL,
		DefaultModel: cfg.Ollama.Model,
	})
}

// commandLogger returns the console logger used by one-shot commands.
func commandLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	return logging.NewConsole(cmd.ErrOrStderr(), cfg.Log.Level)
}
