// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"end of word", "hello wor", 9, "wor"},
		{"after space", "hello ", 6, ""},
		{"cursor mid text", "hello world", 5, "hello"},
		{"multibyte", "naïve café", 10, "café"},
		{"after newline", "line one\nabc", 12, "abc"},
		{"cursor past end", "abc", 99, "abc"},
		{"cursor at start", "abc", 0, ""},
		{"empty", "", 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentWord(tc.text, tc.cursor))
		})
	}
}

func TestTextBeforeCursor(t *testing.T) {
	assert.Equal(t, "I am", TextBeforeCursor("I am going", 4))
	assert.Equal(t, "日本", TextBeforeCursor("日本語", 2))
	assert.Equal(t, "", TextBeforeCursor("abc", -1))
}

func TestWordLen_NormalizesCombiningMarks(t *testing.T) {
	assert.Equal(t, 2, WordLen("e\u0301t"))
	assert.Equal(t, 3, WordLen("hel"))
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{"**hello**", "hello"},
		{`"hello"`, "hello"},
		{" going.\n", "going"},
		{"__the__", "the"},
		{"receive, I think", "receive"},
		{"café!", "café"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ExtractToken(tc.reply), "reply %q", tc.reply)
	}
}

func TestApplyCorrection(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"I saw teh", "I saw the "},
		{"teh", "the "},
		{"", "the "},
		{"line one\nteh  ", "line one\nthe "},
		{"two  spaces\tand tab teh", "two  spaces\tand tab the "},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ApplyCorrection(tc.content, "the"), "content %q", tc.content)
	}
}

func TestApplyNextWord(t *testing.T) {
	assert.Equal(t, "I am going ", ApplyNextWord("I am ", "going"))
	assert.Equal(t, "I am going ", ApplyNextWord("I am", "going"))
}

func TestPrompts(t *testing.T) {
	assert.Contains(t, CorrectionPrompt("helo"), `Spell check: "helo".`)
	assert.Contains(t, NextWordPrompt("I am"), `Next word after: "I am".`)
}
