// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import "fmt"

// CorrectionPrompt asks for the spelling-corrected form of word.
func CorrectionPrompt(word string) string {
	return fmt.Sprintf(`Spell check: "%s". Return ONLY the corrected word, nothing else. `+
		`Examples: "helo" -> "hello", "teh" -> "the", "recieve" -> "receive". Word:`, word)
}

// NextWordPrompt asks for the single word most likely to follow text.
func NextWordPrompt(text string) string {
	return fmt.Sprintf(`Next word after: "%s". Return ONLY one word. `+
		`Examples: "I am" -> "going", "Hello" -> "world". Word:`, text)
}
