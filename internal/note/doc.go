// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package note defines the Note type and the in-memory note store.
//
// Notes live only for the lifetime of the process. The Store owns every
// saved Note; callers get copies and hand edited copies back through Save.
//
// # Usage
//
//	store := note.NewStore(note.Seed(time.Now())...)
//	n := note.NewNote(time.Now())
//	n.Content = "Milk"
//	store.Save(note.Prepare(n, time.Now()))
package note
