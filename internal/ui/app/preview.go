// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// previewRenderer renders note content as markdown. The glamour renderer
// is rebuilt only when the wrap width changes.
type previewRenderer struct {
	theme    *styles.Theme
	width    int
	renderer *glamour.TermRenderer
}

func (p *previewRenderer) styleName() string {
	switch {
	case p.theme.ColorProfile == termenv.Ascii:
		return "notty"
	case p.theme.IsDark:
		return "dark"
	default:
		return "light"
	}
}

// Render returns content as styled markdown wrapped to width. If glamour
// fails the raw content is returned.
func (p *previewRenderer) Render(content string, width int) string {
	width = max(width, 20)
	if p.renderer == nil || p.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.styleName()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		p.renderer, p.width = r, width
	}

	out, err := p.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
