// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the UI and the CLI.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: terminal-column aware truncation with ellipsis
//
// File Operations:
//   - WriteFileAtomic: crash-safe file writing with fsync
//
// # Usage
//
//	line := util.TruncateWidth(n.Preview(), 40)
//	err := util.WriteFileAtomic(path, data, 0o600, 0o700)
package util
