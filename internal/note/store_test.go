// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAppendsThenReplaces(t *testing.T) {
	s := NewStore(Seed(fixedNow)...)
	require.Equal(t, 4, s.Len())

	n := NewNote(fixedNow)
	n.Content = "draft"
	assert.True(t, s.Save(n))
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, n.ID, s.List()[4].ID, "new notes go to the end")

	n.Content = "final"
	assert.False(t, s.Save(n))
	assert.Equal(t, 5, s.Len())

	got, ok := s.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "final", got.Content)
}

func TestStore_ReplaceKeepsPosition(t *testing.T) {
	s := NewStore(Seed(fixedNow)...)

	ideas, ok := s.Get("2")
	require.True(t, ok)
	ideas.Title = "Big ideas"
	s.Save(ideas)

	assert.Equal(t, "Big ideas", s.List()[1].Title)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(Seed(fixedNow)...)
	require.True(t, s.Select("3"))

	assert.True(t, s.Delete("3"))
	assert.False(t, s.Delete("3"))
	assert.Equal(t, 3, s.Len())

	_, ok := s.Selected()
	assert.False(t, ok, "deleting the selected note clears the selection")

	for _, n := range s.List() {
		assert.NotEqual(t, "3", n.ID)
	}
}

func TestStore_DeleteUnsavedIsNoop(t *testing.T) {
	s := NewStore(Seed(fixedNow)...)
	assert.False(t, s.Delete(NewNote(fixedNow).ID))
	assert.Equal(t, 4, s.Len())
}

func TestStore_Select(t *testing.T) {
	s := NewStore(Seed(fixedNow)...)

	_, ok := s.Selected()
	assert.False(t, ok)

	assert.False(t, s.Select("missing"))
	require.True(t, s.Select("4"))

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Appointments", sel.Title)
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore(Seed(fixedNow)...)

	list := s.List()
	list[0].Title = "mutated"

	got, _ := s.Get("1")
	assert.Equal(t, "Shopping list", got.Title)
}

func TestNewStore_DuplicateIDsCollapse(t *testing.T) {
	a := Note{ID: "x", Title: "first"}
	b := Note{ID: "x", Title: "second"}

	s := NewStore(a, b)
	require.Equal(t, 1, s.Len())
	got, _ := s.Get("x")
	assert.Equal(t, "second", got.Title)
}
