// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/euii-ii/NotepadAI/internal/note"
	"github.com/euii-ii/NotepadAI/internal/ui/styles"
	"github.com/euii-ii/NotepadAI/internal/util"
)

// cardInnerWidth is the text width inside a card border and padding.
const cardInnerWidth = 24

// =============================================================================
// NOTE CARD
// =============================================================================

// NoteCard renders a single note as a bordered card: title, a short
// preview, and the category line.
func NoteCard(theme *styles.Theme, n note.Note, selected bool) string {
	title := n.Title
	if n.Protected {
		title = styles.StatusIndicators.Locked + " " + title
	}

	preview := n.Preview()
	if n.Protected {
		preview = "Protected note"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.CardTitle.Foreground(styles.NoteColor(n.Color)).Render(util.TruncateWidth(title, cardInnerWidth)),
		util.TruncateWidth(preview, cardInnerWidth),
		theme.CardMeta.Render(n.Category),
	)
	return theme.CardFor(n, selected).Render(body)
}

// NoteGrid lays cards out perRow to a line. selected is an index into
// notes, or -1.
func NoteGrid(theme *styles.Theme, notes []note.Note, selected, perRow int) string {
	if len(notes) == 0 {
		return theme.Muted.Render("No notes yet. Press n to write one.")
	}
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(notes); start += perRow {
		end := min(start+perRow, len(notes))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, NoteCard(theme, notes[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// NoteListItem renders one line of the list view.
func NoteListItem(theme *styles.Theme, n note.Note, selected bool, width int) string {
	line := n.Title + "  " + theme.Muted.Render(n.Category)
	if n.Protected {
		line = styles.StatusIndicators.Locked + " " + line
	}
	if width > 4 {
		line = util.TruncateWidth(line, width-4)
	}
	if selected {
		return theme.ListItemSelected.Render(line)
	}
	return theme.ListItem.Render(line)
}
