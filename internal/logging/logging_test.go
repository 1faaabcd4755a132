// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"chatty", zapcore.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zapcore.InfoLevel, false)

	logger.Debug("hidden")
	logger.Info("probe ok", zap.Int("models", 2))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "probe ok", line["msg"])
	assert.Equal(t, 2.0, line["models"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "noteplus.log")

	logger, closeFn, err := NewFile(path, "warn")
	require.NoError(t, err)

	logger.Info("skipped")
	logger.Warn("fallback", zap.String("channel", "autocorrect"))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"channel":"autocorrect"`)
	assert.NotContains(t, string(data), "skipped")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsole(&buf, "debug")
	require.NoError(t, err)

	logger.Debug("probing", zap.String("url", "http://127.0.0.1:11434"))
	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "probing")

	_, err = NewConsole(&buf, "chatty")
	assert.Error(t, err)
}
