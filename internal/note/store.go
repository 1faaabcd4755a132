// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package note

import "slices"

// Store is an ordered in-memory note collection keyed by ID.
//
// Store is owned by the UI update loop and is not safe for concurrent use.
type Store struct {
	notes    []Note
	selected string
}

// NewStore creates a store holding the given notes in order. Later notes
// with a duplicate ID replace earlier ones.
func NewStore(notes ...Note) *Store {
	s := &Store{}
	for _, n := range notes {
		s.Save(n)
	}
	return s
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// List returns a copy of all notes in insertion order.
func (s *Store) List() []Note {
	return slices.Clone(s.notes)
}

// Get returns the note with the given ID.
func (s *Store) Get(id string) (Note, bool) {
	i := s.index(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// Save replaces the note with the same ID, or appends it if the ID is new.
// It reports whether the note was newly added.
func (s *Store) Save(n Note) bool {
	if i := s.index(n.ID); i >= 0 {
		s.notes[i] = n
		return false
	}
	s.notes = append(s.notes, n)
	return true
}

// Delete removes the note with the given ID and reports whether it existed.
// Deleting the selected note clears the selection.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	if s.selected == id {
		s.selected = ""
	}
	return true
}

// Select marks the note with the given ID as selected.
func (s *Store) Select(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the selected note, if any.
func (s *Store) Selected() (Note, bool) {
	if s.selected == "" {
		return Note{}, false
	}
	return s.Get(s.selected)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}
