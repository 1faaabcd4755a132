// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euii-ii/NotepadAI/internal/note"
	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// =============================================================================
// SUGGESTION BAR TESTS
// =============================================================================

func TestSuggestionBar_CorrectionLabel(t *testing.T) {
	tests := []struct {
		name string
		bar  SuggestionBar
		want string
	}{
		{"loading", SuggestionBar{CorrectionLoading: true, CurrentWord: "helo"}, "Checking spelling..."},
		{"differs", SuggestionBar{CurrentWord: "helo", Correction: "hello"}, "Fix: hello"},
		{"same", SuggestionBar{CurrentWord: "hello", Correction: "hello"}, "✓ hello"},
		{"empty", SuggestionBar{CurrentWord: "hello"}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.bar.CorrectionLabel())
		})
	}
}

func TestSuggestionBar_NextWordLabel(t *testing.T) {
	assert.Equal(t, "Getting suggestions...", SuggestionBar{NextWordLoading: true}.NextWordLabel())
	assert.Equal(t, "Next: going", SuggestionBar{NextWord: "going"}.NextWordLabel())
	assert.Equal(t, "", SuggestionBar{}.NextWordLabel())
}

func TestSuggestionBar_View(t *testing.T) {
	theme := styles.NewTheme()

	assert.Empty(t, SuggestionBar{Correction: "hello"}.View(theme), "hidden bar renders nothing")
	assert.Empty(t, SuggestionBar{Visible: true}.View(theme), "no buttons renders nothing")

	view := SuggestionBar{Visible: true, CurrentWord: "helo", Correction: "hello", NextWord: "world"}.View(theme)
	assert.Contains(t, view, "Fix: hello")
	assert.Contains(t, view, "Next: world")
	assert.Contains(t, view, "ctrl+r")
}

// =============================================================================
// NOTE CARD TESTS
// =============================================================================

func TestNoteCard_ProtectedHidesContent(t *testing.T) {
	theme := styles.NewTheme()
	n := note.Note{Title: "Diary", Content: "secret thoughts", Category: "15 NOV", Protected: true}

	card := NoteCard(theme, n, false)
	assert.Contains(t, card, "Diary")
	assert.Contains(t, card, "Protected note")
	assert.NotContains(t, card, "secret")
}

func TestNoteGrid(t *testing.T) {
	theme := styles.NewTheme()

	assert.Contains(t, NoteGrid(theme, nil, -1, 3), "No notes yet")

	grid := NoteGrid(theme, note.Seed(time.Now()), 0, 2)
	for _, title := range []string{"Shopping list", "Ideas", "Diary", "Appointments"} {
		assert.Contains(t, grid, title)
	}
}

func TestNoteListItem(t *testing.T) {
	theme := styles.NewTheme()
	n := note.Note{Title: "Ideas", Category: "25 NOV"}

	assert.Contains(t, NoteListItem(theme, n, true, 80), "Ideas")
	assert.Contains(t, NoteListItem(theme, n, false, 80), "25 NOV")
}

// =============================================================================
// STATUS LINE / TOAST TESTS
// =============================================================================

func TestStatusLine_View(t *testing.T) {
	theme := styles.NewTheme()

	view := StatusLine{Model: "gemma2:2b", Connection: ConnectionOffline, Help: "esc back"}.View(theme)
	assert.Contains(t, view, "gemma2:2b")
	assert.Contains(t, view, "offline")
	assert.Contains(t, view, "esc back")
}

func TestConnection_String(t *testing.T) {
	assert.Equal(t, "checking", ConnectionChecking.String())
	assert.Equal(t, "online", ConnectionOnline.String())
	assert.Equal(t, "unknown", ConnectionUnknown.String())
}

func TestNewToast(t *testing.T) {
	first, cmd := NewToast(ToastKindSuccess, "Note saved")
	require.NotNil(t, cmd)
	second, _ := NewToast(ToastKindError, "Clipboard unavailable")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Contains(t, first.View(), "Note saved")
	assert.Contains(t, second.View(), "[X]")
}

func TestWelcome_View(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetSize(100, 30)
	w.SetModelName("gemma2:2b")

	view := w.View()
	assert.Contains(t, view, Tagline)
	assert.Contains(t, view, "Get Started")
	assert.Contains(t, view, "gemma2:2b")
}

func TestDebugPanel(t *testing.T) {
	view := DebugPanel(styles.NewTheme(), []DebugRow{{Label: "word", Value: Quote("")}})
	assert.Contains(t, view, `""`)
	assert.Contains(t, view, "word")
}
