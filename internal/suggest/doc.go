// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest implements the editor's text-assist pipeline.
//
// Two independent channels run side by side:
//
//   - Autocorrect: every content change re-reads the word before the
//     cursor and, after a quiet period, asks the model to spell-check it.
//   - NextWord: a space keystroke asks the model for the word that should
//     follow the text before the cursor.
//
// Each channel moves through Idle, Pending (debounce running), InFlight
// (request sent), and Resolved or Fallback. A newer trigger cancels the
// older timer or request on the same channel, and every request carries a
// per-channel sequence number so that a late response from a superseded
// request is dropped even if cancellation did not reach it in time.
//
// The Engine is driven from a Bubble Tea Update loop: trigger methods and
// Update return tea.Cmds for timers and requests, and all state changes
// happen on the caller's goroutine.
//
// # Key Types
//
//   - Engine: per-editor-session state machine for both channels
//   - Suggester: prompt building, decoding options, timeouts and reply
//     parsing on top of a Completer (normally *ollama.Client)
//   - FireMsg, ResultMsg: messages routed back into Engine.Update
package suggest
