// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// Tagline is shown under the logo on the welcome screen.
const Tagline = "where every idea finds its perfect space"

// =============================================================================
// WELCOME SCREEN
// =============================================================================

// Welcome is the landing screen.
type Welcome struct {
	version   string
	modelName string

	width  int
	height int

	theme *styles.Theme
}

// NewWelcome creates a new welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version: "dev",
		theme:   theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetModelName sets the model shown under the tagline.
func (w *Welcome) SetModelName(name string) {
	w.modelName = name
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the welcome screen centered in the terminal.
func (w Welcome) View() string {
	width, height := w.width, w.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	parts := []string{
		w.renderLogo(width),
		"",
		w.theme.WelcomeTagline.Render(Tagline),
		"",
		w.theme.WelcomePressKey.Render("Get Started"),
		w.theme.Muted.Render("press enter"),
	}
	if w.modelName != "" {
		parts = append(parts, "", w.theme.Muted.Render("suggestions by "+w.modelName+" | v"+w.version))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderLogo uses the ASCII art logo when it fits, a plain title otherwise.
func (w Welcome) renderLogo(width int) string {
	if width >= 50 {
		logo := ` _   _       _       ____  _
| \ | | ___ | |_ ___|  _ \| |_   _ ___
|  \| |/ _ \| __/ _ \ |_) | | | | / __|
| |\  | (_) | ||  __/  __/| | |_| \__ \
|_| \_|\___/ \__\___|_|   |_|\__,_|___/`
		return w.theme.WelcomeLogo.Render(logo)
	}
	return w.theme.WelcomeLogo.Render("NotePlus")
}
