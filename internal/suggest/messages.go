// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import "time"

// FireMsg is delivered when a channel's debounce timer expires.
type FireMsg struct {
	Session uint64
	Channel Channel
	Seq     uint64
}

// ResultMsg carries a completed (or failed) request back to the engine.
type ResultMsg struct {
	Session    uint64
	Channel    Channel
	Seq        uint64
	Query      string
	Suggestion string
	Err        error
	Elapsed    time.Duration
}
