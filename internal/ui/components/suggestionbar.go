// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// =============================================================================
// SUGGESTION BAR
// =============================================================================

// SuggestionBar is a read-only snapshot of both suggestion channels,
// rendered under the editor.
type SuggestionBar struct {
	Visible bool

	CurrentWord       string
	Correction        string
	CorrectionLoading bool

	NextWord        string
	NextWordLoading bool

	// Spinner is the current spinner frame shown next to loading labels.
	Spinner string
}

// CorrectionLabel returns the autocorrect button text, or "" when the
// button is hidden.
func (b SuggestionBar) CorrectionLabel() string {
	switch {
	case b.CorrectionLoading:
		return "Checking spelling..."
	case b.Correction == "":
		return ""
	case b.Correction != b.CurrentWord:
		return "Fix: " + b.Correction
	default:
		return "✓ " + b.CurrentWord
	}
}

// NextWordLabel returns the next-word button text, or "" when the button
// is hidden.
func (b SuggestionBar) NextWordLabel() string {
	switch {
	case b.NextWordLoading:
		return "Getting suggestions..."
	case b.NextWord == "":
		return ""
	default:
		return "Next: " + b.NextWord
	}
}

// View renders the bar. It is empty when hidden or when neither button has
// anything to show.
func (b SuggestionBar) View(theme *styles.Theme) string {
	if !b.Visible {
		return ""
	}

	var buttons []string
	if label := b.CorrectionLabel(); label != "" {
		buttons = append(buttons, b.renderButton(theme, label, b.CorrectionLoading, b.correctionStyle(theme), "ctrl+r"))
	}
	if label := b.NextWordLabel(); label != "" {
		buttons = append(buttons, b.renderButton(theme, label, b.NextWordLoading, theme.SuggestionNext, "ctrl+o"))
	}
	if len(buttons) == 0 {
		return ""
	}
	return theme.SuggestionBar.Render(strings.Join(buttons, "  "))
}

func (b SuggestionBar) correctionStyle(theme *styles.Theme) lipgloss.Style {
	if b.Correction != b.CurrentWord {
		return theme.SuggestionFix
	}
	return theme.SuggestionOK
}

func (b SuggestionBar) renderButton(theme *styles.Theme, label string, loading bool, style lipgloss.Style, shortcut string) string {
	if loading {
		return theme.SuggestionLoading.Render(strings.TrimSpace(b.Spinner + " " + label))
	}
	return style.Render(label) + " " + theme.SuggestionShortcut.Render(shortcut)
}
