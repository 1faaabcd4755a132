// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the presentational pieces of the noteplus TUI.

Components are plain render functions or small value types; the views in
package app own all state and pass snapshots in.

# Components

  - Welcome (welcome.go) - Landing screen with logo and tagline
  - NoteCard, NoteGrid, NoteListItem (notecard.go) - Dashboard cards and list rows
  - SuggestionBar (suggestionbar.go) - Autocorrect and next-word buttons
  - StatusLine (statusline.go) - Model, connection state and key help
  - DebugPanel (debugpanel.go) - Channel state dump toggled with f2
  - Toast (toast.go) - Auto-expiring status messages
*/
package components
