// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the noteplus TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Coral - Brand color for buttons, focused borders and fix suggestions
  - Emerald - Resolved suggestions and the online indicator
  - Amber - Loading and debug panel
  - Rose - Errors and the offline indicator
  - Cyan - Next-word suggestions

Note cards are tinted with NoteColor, one color per note.Color.

# Theme System (theme.go)

	theme := styles.NewTheme()
	theme.SetSize(width, height)
	card := theme.CardFor(n, selected).Render(body)

# Animation System (animations.go)

DotsSpinner converts into a bubbles spinner definition with Bubble().
*/
package styles
