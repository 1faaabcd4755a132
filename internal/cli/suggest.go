// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/suggest"
)

// The one-shot suggestion commands print the value the editor would show,
// including the fallback when the request fails. A failure still exits
// non-zero so scripts can tell the two apart.

func newCorrectCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "correct <word>",
		Short:   "Spell-check a single word",
		Example: "  noteplus correct helo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggestion(cmd, flags, suggest.Autocorrect, args[0])
		},
	}
}

func newNextCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "next <text...>",
		Short:   "Predict the word that follows some text",
		Example: "  noteplus next I am",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggestion(cmd, flags, suggest.NextWord, strings.Join(args, " "))
		},
	}
}

func runSuggestion(cmd *cobra.Command, flags *globalFlags, ch suggest.Channel, query string) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	logger, err := commandLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s := suggest.NewSuggester(newClient(cfg), suggest.OptionsFromConfig(cfg))

	start := time.Now()
	var result string
	switch ch {
	case suggest.Autocorrect:
		result, err = s.Correct(cmd.Context(), query)
	default:
		result, err = s.NextWord(cmd.Context(), query)
	}
	elapsed := time.Since(start)

	fmt.Fprintln(cmd.OutOrStdout(), result)

	if err != nil {
		logger.Warn("suggestion fell back",
			zap.Stringer("channel", ch),
			zap.String("query", query),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return fmt.Errorf("%s request failed: %w", ch, err)
	}
	logger.Debug("suggestion resolved",
		zap.Stringer("channel", ch),
		zap.String("query", query),
		zap.String("suggestion", result),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}
