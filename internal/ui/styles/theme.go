// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/euii-ii/NotepadAI/internal/note"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeLogo     lipgloss.Style
	WelcomeTagline  lipgloss.Style
	WelcomePressKey lipgloss.Style

	// ==========================================================================
	// NOTE CARD STYLES
	// ==========================================================================

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style

	// ==========================================================================
	// LIST VIEW STYLES
	// ==========================================================================

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	Preview          lipgloss.Style

	// ==========================================================================
	// EDITOR STYLES
	// ==========================================================================

	EditorTitle   lipgloss.Style
	EditorBody    lipgloss.Style
	EditorFocused lipgloss.Style
	EditorFooter  lipgloss.Style

	// ==========================================================================
	// SUGGESTION BAR STYLES
	// ==========================================================================

	SuggestionBar      lipgloss.Style
	SuggestionFix      lipgloss.Style
	SuggestionOK       lipgloss.Style
	SuggestionNext     lipgloss.Style
	SuggestionLoading  lipgloss.Style
	SuggestionShortcut lipgloss.Style

	// ==========================================================================
	// STATUS LINE AND DEBUG STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Online       lipgloss.Style
	Offline      lipgloss.Style
	DebugPanel   lipgloss.Style
	DebugLabel   lipgloss.Style
	DebugValue   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Coral).
		MarginBottom(1)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Welcome
	t.WelcomeLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(Coral)

	t.WelcomeTagline = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.WelcomePressKey = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Coral).
		Bold(true).
		Padding(0, 3)

	// Note cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(28)

	t.CardSelected = t.Card.
		BorderStyle(lipgloss.ThickBorder())

	t.CardTitle = lipgloss.NewStyle().
		Bold(true)

	t.CardMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// List view
	t.ListItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(Coral).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Coral).
		PaddingLeft(1)

	t.Preview = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		MarginTop(1)

	// Editor
	t.EditorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.EditorBody = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.EditorFocused = t.EditorBody.
		BorderForeground(Coral)

	t.EditorFooter = lipgloss.NewStyle().
		Foreground(TextMuted).
		MarginTop(1)

	// Suggestion bar
	t.SuggestionBar = lipgloss.NewStyle().
		MarginTop(1)

	t.SuggestionFix = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Coral).
		Padding(0, 1)

	t.SuggestionOK = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Emerald).
		Padding(0, 1)

	t.SuggestionNext = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Padding(0, 1)

	t.SuggestionLoading = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true).
		Padding(0, 1)

	t.SuggestionShortcut = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status line
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		MarginTop(1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Coral).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Online = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.Offline = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Debug panel
	t.DebugPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Amber).
		Padding(0, 1).
		MarginTop(1)

	t.DebugLabel = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(16)

	t.DebugValue = lipgloss.NewStyle().
		Foreground(TextPrimary)
}

// CardFor returns the card style for n, tinted with the note's color.
func (t *Theme) CardFor(n note.Note, selected bool) lipgloss.Style {
	style := t.Card
	if selected {
		style = t.CardSelected
	}
	return style.BorderForeground(NoteColor(n.Color))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// CardsPerRow returns how many note cards fit side by side.
func (t *Theme) CardsPerRow() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		return 1
	case LayoutMedium:
		return 2
	default:
		return 3
	}
}
