// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/euii-ii/NotepadAI/internal/ui/components"
)

// =============================================================================
// DASHBOARD
// =============================================================================

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	perRow := m.theme.CardsPerRow()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		return m, m.openNew()
	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()
	case key.Matches(msg, m.keys.ListView):
		m.view = ViewList
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-perRow)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(perRow)
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	notes := m.store.List()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.theme.Header.Render("NotePlus"),
		"  ",
		m.theme.Muted.Render(fmt.Sprintf("My Notes (%d)", len(notes))),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		components.NoteGrid(m.theme, notes, m.cursor, m.theme.CardsPerRow()),
		m.statusLine(m.help.ShortHelpView(m.keys.DashboardHelp())),
	)
}
