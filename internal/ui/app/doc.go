// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the noteplus TUI.
//
// The model routes between four views: welcome, dashboard, list and
// editor. It owns the note store; each editor session owns a
// suggest.Engine that is closed when the session ends, so late suggestion
// results are discarded.
//
// # Key Types
//
//   - Model: tea.Model with the view router and note store
//   - Editor: title and content inputs wired to the suggestion engine
//   - KeyMap: every key binding, grouped per view for the help line
package app
