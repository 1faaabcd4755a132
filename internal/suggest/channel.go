// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import "context"

// Channel identifies one of the two suggestion pipelines.
type Channel int

const (
	Autocorrect Channel = iota
	NextWord
	numChannels
)

// String returns the channel name used in logs and the debug panel.
func (c Channel) String() string {
	switch c {
	case Autocorrect:
		return "autocorrect"
	case NextWord:
		return "next_word"
	default:
		return "unknown"
	}
}

func (c Channel) valid() bool {
	return c >= 0 && c < numChannels
}

// State is the lifecycle position of a channel.
type State int

const (
	Idle State = iota
	Pending
	InFlight
	Resolved
	Fallback
)

// String returns the display name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case InFlight:
		return "in_flight"
	case Resolved:
		return "resolved"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// channelState holds one channel's bookkeeping. seq increases on every
// trigger and reset; timers and results carrying an older seq are ignored.
type channelState struct {
	state      State
	seq        uint64
	query      string
	suggestion string
	cancel     context.CancelFunc
}

// stop cancels the in-flight request, if any.
func (c *channelState) stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// arm supersedes any outstanding work and moves to Pending for query.
func (c *channelState) arm(query string) uint64 {
	c.stop()
	c.seq++
	c.state = Pending
	c.query = query
	c.suggestion = ""
	return c.seq
}

// reset supersedes any outstanding work and returns to Idle.
func (c *channelState) reset() {
	c.stop()
	c.seq++
	c.state = Idle
	c.query = ""
	c.suggestion = ""
}

// fallbackFor returns the value a channel shows when its request fails.
func fallbackFor(ch Channel, query string) string {
	if ch == Autocorrect {
		return query
	}
	return ""
}
