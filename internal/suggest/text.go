// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	emphasisMarkers = strings.NewReplacer("**", "", "__", "")
	// Anything that is not a letter, digit, underscore or whitespace.
	nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
)

// TextBeforeCursor returns text up to the rune offset cursor. The cursor is
// clamped to the text.
func TextBeforeCursor(text string, cursor int) string {
	if cursor <= 0 {
		return ""
	}
	i := 0
	for byteIdx := range text {
		if i == cursor {
			return text[:byteIdx]
		}
		i++
	}
	return text
}

// CurrentWord returns the whitespace-delimited token that ends at the
// cursor. It is empty when the cursor follows whitespace.
func CurrentWord(text string, cursor int) string {
	return lastToken(TextBeforeCursor(text, cursor))
}

// WordLen counts the characters of w after NFC normalization, so that a
// letter typed as base plus combining mark counts once.
func WordLen(w string) int {
	return utf8.RuneCountInString(norm.NFC.String(w))
}

// lastToken returns the text after the last whitespace rune of s.
func lastToken(s string) string {
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[idx:])
	return s[idx+size:]
}

// ExtractToken pulls the suggestion out of a model reply: markdown emphasis
// markers and non-word characters are stripped, then the first token is
// taken. It returns "" when nothing usable remains.
func ExtractToken(reply string) string {
	cleaned := emphasisMarkers.Replace(strings.TrimSpace(reply))
	cleaned = nonWordChars.ReplaceAllString(cleaned, "")
	for _, field := range strings.Fields(cleaned) {
		if tok := strings.Trim(field, "_"); tok != "" {
			return tok
		}
	}
	return ""
}

// ApplyCorrection replaces the last whitespace-delimited token of content
// with suggestion and appends a space. Text before that token is kept as is.
func ApplyCorrection(content, suggestion string) string {
	trimmed := strings.TrimRightFunc(content, unicode.IsSpace)
	idx := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	prefix := ""
	if idx >= 0 {
		_, size := utf8.DecodeRuneInString(trimmed[idx:])
		prefix = trimmed[:idx+size]
	}
	return prefix + suggestion + " "
}

// ApplyNextWord appends suggestion and a trailing space to content,
// inserting a separating space first when content does not end in one.
func ApplyNextWord(content, suggestion string) string {
	if !strings.HasSuffix(content, " ") {
		content += " "
	}
	return content + suggestion + " "
}
