// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/euii-ii/NotepadAI/internal/ui/components"
)

// =============================================================================
// LIST VIEW
// =============================================================================

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.view = ViewDashboard
	case key.Matches(msg, m.keys.New):
		return m, m.openNew()
	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	}
	return m, nil
}

func (m Model) viewList() string {
	notes := m.store.List()
	width := m.contentWidth()

	var b strings.Builder
	for i, n := range notes {
		b.WriteString(components.NoteListItem(m.theme, n, i == m.cursor, width))
		b.WriteByte('\n')
	}
	if len(notes) == 0 {
		b.WriteString(m.theme.Muted.Render("No notes yet. Press n to write one."))
	}

	parts := []string{m.theme.Header.Render("All Notes"), strings.TrimRight(b.String(), "\n")}

	if m.cursor >= 0 && m.cursor < len(notes) {
		n := notes[m.cursor]
		body := "_Protected note_"
		if !n.Protected {
			body = n.Content
		}
		parts = append(parts, m.theme.Preview.Render(m.preview.Render(body, width)))
	}

	parts = append(parts, m.statusLine(m.help.ShortHelpView(m.keys.ListHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
