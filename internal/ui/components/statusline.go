// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// =============================================================================
// CONNECTION STATUS
// =============================================================================

// Connection is the result of the inference endpoint probe.
type Connection int

const (
	ConnectionUnknown Connection = iota
	ConnectionChecking
	ConnectionOnline
	ConnectionOffline
)

// String returns a display name for the connection state.
func (c Connection) String() string {
	switch c {
	case ConnectionChecking:
		return "checking"
	case ConnectionOnline:
		return "online"
	case ConnectionOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// =============================================================================
// STATUS LINE
// =============================================================================

// StatusLine shows the model, its connection state, and a help line.
type StatusLine struct {
	Model      string
	Connection Connection
	Help       string
	Flash      string
}

// View renders the status line.
func (s StatusLine) View(theme *styles.Theme) string {
	var parts []string
	if s.Model != "" {
		parts = append(parts, s.Model+" "+s.renderConnection(theme))
	}
	if s.Flash != "" {
		parts = append(parts, s.Flash)
	}
	if s.Help != "" {
		parts = append(parts, s.Help)
	}
	return theme.StatusBar.Render(strings.Join(parts, " | "))
}

func (s StatusLine) renderConnection(theme *styles.Theme) string {
	switch s.Connection {
	case ConnectionOnline:
		return theme.Online.Render(s.Connection.String())
	case ConnectionOffline:
		return theme.Offline.Render(s.Connection.String())
	default:
		return theme.Muted.Render(s.Connection.String())
	}
}
