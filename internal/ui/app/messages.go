// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

// probeResultMsg reports the startup probe of the inference endpoint.
type probeResultMsg struct {
	models []string
	err    error
}

// clipboardMsg reports the outcome of a copy to the system clipboard.
type clipboardMsg struct {
	chars int
	err   error
}
