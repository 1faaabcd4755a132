// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/euii-ii/NotepadAI/internal/note"
)

// =============================================================================
// BRAND COLORS
// =============================================================================

// Coral - Brand color, primary buttons, focused borders
var Coral = lipgloss.AdaptiveColor{Light: "#E8553F", Dark: "#FF7F6B"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Emerald - Resolved suggestions, online indicator
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Amber - Loading states, fallback suggestions
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Rose - Errors, delete action, offline indicator
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Cyan - Next-word suggestions
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on note cards and buttons
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// NOTE CARD COLORS
// =============================================================================

var noteColors = map[note.Color]lipgloss.AdaptiveColor{
	note.ColorCoral:  Coral,
	note.ColorOrange: {Light: "#EA7A1C", Dark: "#FFA552"},
	note.ColorPink:   {Light: "#DB4F7B", Dark: "#FF8FAB"},
	note.ColorPurple: {Light: "#7C3AED", Dark: "#B69CFF"},
	note.ColorBlue:   {Light: "#2563EB", Dark: "#7DB9FF"},
	note.ColorGreen:  {Light: "#16A34A", Dark: "#8BD8A0"},
}

// NoteColor returns the card color for c. Unknown colors render as coral.
func NoteColor(c note.Color) lipgloss.AdaptiveColor {
	return noteColors[c.OrDefault()]
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are ASCII markers shown next to colored status text so
// state is readable without color.
var StatusIndicators = struct {
	Success string
	Error   string
	Pending string
	Locked  string
}{
	Success: "[OK]",
	Error:   "[X]",
	Pending: "[ ]",
	Locked:  "[#]",
}

// RenderError renders an error message with the X indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderSuccess renders a success message with the OK indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true).
		Render(StatusIndicators.Success + " " + message)
}
