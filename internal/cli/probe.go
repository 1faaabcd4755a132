// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/ollama"
)

func newProbeCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check the Ollama endpoint and list installed models",
		Long: `Checks that the configured Ollama endpoint answers, lists the
installed models and reports whether the suggestion model is among them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger, err := commandLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Ollama.ProbeTimeout())
			defer cancel()

			client := newClient(cfg)
			url := client.BaseURL()

			logger.Debug("probing inference endpoint", zap.String("url", url))
			models, err := reachableModels(ctx, client)
			if err != nil {
				logger.Warn("inference endpoint unreachable",
					zap.String("url", url),
					zap.Error(err),
				)
				return fmt.Errorf("probe %s: %w", url, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, SuccessStyle.Render("[OK] Ollama is running at "+url))
			fmt.Fprintln(out)

			model := client.Model()
			for i := range models {
				m := &models[i]
				marker := "  "
				if m.Name == model {
					marker = "* "
				}
				fmt.Fprintf(out, "%s%-32s %s\n", marker, m.Name, MutedStyle.Render(m.FormatSize()))
			}
			if len(models) == 0 {
				fmt.Fprintln(out, MutedStyle.Render("  no models installed"))
			}

			if !slices.Contains(ollama.ModelNames(models), model) {
				logger.Warn("configured model is not installed", zap.String("model", model))
				fmt.Fprintln(out)
				fmt.Fprintln(out, WarningStyle.Render(fmt.Sprintf("Model %s is not installed. Run: ollama pull %s", model, model)))
			}
			return nil
		},
	}
}

// reachableModels confirms the server root answers before asking for the model
// list.
func reachableModels(ctx context.Context, client *ollama.Client) ([]ollama.ModelInfo, error) {
	if err := client.CheckRunning(ctx); err != nil {
		return nil, err
	}
	return client.ListModels(ctx)
}
