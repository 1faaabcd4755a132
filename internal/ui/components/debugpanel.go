// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// DebugRow is one label/value pair of the debug panel.
type DebugRow struct {
	Label string
	Value string
}

// DebugPanel renders rows as an aligned two-column box.
func DebugPanel(theme *styles.Theme, rows []DebugRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, theme.Title.Render("Debug"))
	for _, r := range rows {
		lines = append(lines, theme.DebugLabel.Render(r.Label)+theme.DebugValue.Render(r.Value))
	}
	return theme.DebugPanel.Render(strings.Join(lines, "\n"))
}

// Quote formats a value for the debug panel so empty strings stay visible.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}
