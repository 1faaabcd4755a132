// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	ToastKindStatus ToastKind = iota
	ToastKindError
	ToastKindSuccess
)

// DefaultToastDuration is how long a status or success toast stays up.
const DefaultToastDuration = 3 * time.Second

// ErrorToastDuration is longer so errors can be read.
const ErrorToastDuration = 6 * time.Second

var toastIDs atomic.Int64

// Toast is a short-lived message shown in the status line.
type Toast struct {
	ID      int64
	Message string
	Kind    ToastKind
}

// ToastExpiredMsg is delivered when the toast with ID should disappear.
type ToastExpiredMsg struct {
	ID int64
}

// NewToast creates a toast and the command that expires it.
func NewToast(kind ToastKind, message string) (Toast, tea.Cmd) {
	t := Toast{ID: toastIDs.Add(1), Message: message, Kind: kind}
	d := DefaultToastDuration
	if kind == ToastKindError {
		d = ErrorToastDuration
	}
	id := t.ID
	return t, tea.Tick(d, func(time.Time) tea.Msg { return ToastExpiredMsg{ID: id} })
}

// View renders the toast with its status marker.
func (t Toast) View() string {
	switch t.Kind {
	case ToastKindError:
		return styles.RenderError(t.Message)
	case ToastKindSuccess:
		return styles.RenderSuccess(t.Message)
	default:
		return t.Message
	}
}
