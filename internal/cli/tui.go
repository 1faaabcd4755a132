// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/logging"
	"github.com/euii-ii/NotepadAI/internal/suggest"
	"github.com/euii-ii/NotepadAI/internal/ui/app"
)

// ErrNotInteractive is returned when the TUI is started without a terminal.
var ErrNotInteractive = errors.New("noteplus needs an interactive terminal; try 'noteplus probe' or 'noteplus --help'")

// runTUI starts the full-screen notes app. Logs go to a file because the
// TUI owns the terminal.
func runTUI(flags *globalFlags) error {
	if !interactive() {
		return ErrNotInteractive
	}

	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.NewFile(logPath, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	client := newClient(cfg)
	suggester := suggest.NewSuggester(client, suggest.OptionsFromConfig(cfg))

	logger.Info("starting noteplus",
		zap.String("version", Version),
		zap.String("ollama_url", cfg.Ollama.URL),
		zap.String("model", cfg.Ollama.Model),
	)

	model := app.New(app.Options{
		Config:    cfg,
		Requester: suggester,
		Lister:    client,
		Logger:    logger,
		Version:   Version,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run TUI: %w", err)
	}
	logger.Info("noteplus exited")
	return nil
}
