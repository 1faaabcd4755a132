// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package note

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// COLOR
// =============================================================================

// Color is a display tag for a note card.
type Color string

const (
	ColorCoral  Color = "coral"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
)

// Colors lists every valid color in display order.
var Colors = []Color{ColorCoral, ColorOrange, ColorPink, ColorPurple, ColorBlue, ColorGreen}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// OrDefault returns c, or coral when c is unknown.
func (c Color) OrDefault() Color {
	if c.Valid() {
		return c
	}
	return ColorCoral
}

// =============================================================================
// NOTE
// =============================================================================

const (
	// DefaultTitle is the title of a freshly created note.
	DefaultTitle = "New Note"
	// UntitledTitle replaces an empty title on save.
	UntitledTitle = "Untitled"
	// DefaultCategory labels new notes.
	DefaultCategory = "TODAY"
)

// Note is a single note.
//
// Protected is a display label only; no access control is attached to it.
type Note struct {
	ID        string
	Title     string
	Content   string
	Category  string
	Date      time.Time
	Color     Color
	Protected bool
}

// NewNote returns the working copy for a "new note" action. It is not part
// of any store until saved.
func NewNote(now time.Time) Note {
	return Note{
		ID:       uuid.NewString(),
		Title:    DefaultTitle,
		Content:  "",
		Category: DefaultCategory,
		Date:     now,
		Color:    ColorCoral,
	}
}

// Prepare applies save normalization: an empty title becomes "Untitled"
// and the date is stamped with now.
func Prepare(n Note, now time.Time) Note {
	if strings.TrimSpace(n.Title) == "" {
		n.Title = UntitledTitle
	}
	n.Date = now
	return n
}

// ISODate renders the note date the way it is exchanged and logged.
func (n Note) ISODate() string {
	return n.Date.UTC().Format(time.RFC3339Nano)
}

// Preview returns the content collapsed onto one line.
func (n Note) Preview() string {
	return strings.Join(strings.Fields(n.Content), " ")
}

// EditorDate formats the editor footer label, e.g. "TODAY - 14 Oct 2026".
func EditorDate(now time.Time) string {
	return "TODAY - " + now.Format("2 Jan 2006")
}
