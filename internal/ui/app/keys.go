// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings of the application.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding

	// Welcome / dashboard / list
	Start    key.Binding
	New      key.Binding
	Open     key.Binding
	ListView key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding

	// Editor
	Back            key.Binding
	Save            key.Binding
	Delete          key.Binding
	FocusNext       key.Binding
	ApplyCorrection key.Binding
	AcceptNext      key.Binding
	SuggestNow      key.Binding
	Copy            key.Binding
	Debug           key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "get started"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open"),
		),
		ListView: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "list view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "delete"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "title/content"),
		),
		ApplyCorrection: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "apply fix"),
		),
		AcceptNext: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "accept next"),
		),
		SuggestNow: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "suggest now"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "debug"),
		),
	}
}

// =============================================================================
// HELP GROUPS
// =============================================================================

// WelcomeHelp returns the bindings shown on the welcome screen.
func (k KeyMap) WelcomeHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

// DashboardHelp returns the bindings shown on the dashboard.
func (k KeyMap) DashboardHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.ListView, k.Quit}
}

// ListHelp returns the bindings shown in the list view.
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.New, k.Open, k.Back, k.Quit}
}

// EditorHelp returns the bindings shown in the editor.
func (k KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Save, k.Delete, k.Back, k.ApplyCorrection, k.AcceptNext, k.SuggestNow, k.Copy, k.Debug}
}
