// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euii-ii/NotepadAI/internal/config"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"NOTEPLUS_OLLAMA_URL", "NOTEPLUS_MODEL", "NOTEPLUS_LOG_LEVEL", "NOTEPLUS_LOG_FILE"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func ollamaServer(t *testing.T, chatReply string, models ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = io.WriteString(w, "Ollama is running")
		case "/api/tags":
			type model struct {
				Name string `json:"name"`
				Size int64  `json:"size"`
			}
			resp := struct {
				Models []model `json:"models"`
			}{Models: []model{}}
			for _, name := range models {
				resp.Models = append(resp.Models, model{Name: name, Size: 1629518495})
			}
			_ = json.NewEncoder(w).Encode(resp)
		case "/api/chat":
			_, _ = io.ReadAll(r.Body)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": map[string]string{"role": "assistant", "content": chatReply},
				"done":    true,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// =============================================================================
// ROOT
// =============================================================================

func TestRoot_RequiresTerminal(t *testing.T) {
	prev := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = prev })

	_, _, err := run(t)
	assert.True(t, errors.Is(err, ErrNotInteractive))
}

func TestRoot_RejectsInvalidFlagOverride(t *testing.T) {
	_, _, err := run(t, "--ollama-url", "ftp://example.com", "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama.url")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "noteplus "+Version)
	assert.Contains(t, out, "Commit:")
}

// =============================================================================
// PROBE
// =============================================================================

func TestProbe_ListsModels(t *testing.T) {
	srv := ollamaServer(t, "", "gemma2:2b", "llama3:8b")

	out, _, err := run(t, "--ollama-url", srv.URL, "probe")
	require.NoError(t, err)
	assert.Contains(t, out, "Ollama is running at "+srv.URL)
	assert.Contains(t, out, "* gemma2:2b")
	assert.Contains(t, out, "llama3:8b")
	assert.Contains(t, out, "1.5 GB")
	assert.NotContains(t, out, "not installed")
}

func TestProbe_WarnsWhenModelMissing(t *testing.T) {
	srv := ollamaServer(t, "", "llama3:8b")

	out, stderr, err := run(t, "--ollama-url", srv.URL, "probe")
	require.NoError(t, err)
	assert.Contains(t, out, "ollama pull gemma2:2b")
	assert.Contains(t, stderr, "configured model is not installed")
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, stderr, err := run(t, "--ollama-url", url, "probe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe "+url)
	assert.Contains(t, stderr, "inference endpoint unreachable")
}

func TestHealthCheck_RootNotOKSkipsModelList(t *testing.T) {
	var tagsHit bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			tagsHit = true
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	out, stderr, err := run(t, "--ollama-url", srv.URL, "probe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status from Ollama")
	assert.Contains(t, stderr, "inference endpoint unreachable")
	assert.NotContains(t, out, "[OK]")
	assert.False(t, tagsHit)
}

func TestHealthCheck_TrailingSlashURL(t *testing.T) {
	srv := ollamaServer(t, "", "gemma2:2b")

	out, _, err := run(t, "--ollama-url", srv.URL+"/", "probe")
	require.NoError(t, err)
	assert.Contains(t, out, "Ollama is running at "+srv.URL+"\n")
	assert.Contains(t, out, "* gemma2:2b")
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

func TestCorrect(t *testing.T) {
	srv := ollamaServer(t, "hello")

	out, _, err := run(t, "--ollama-url", srv.URL, "correct", "helo")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestCorrect_FallsBackToWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	out, stderr, err := run(t, "--ollama-url", srv.URL, "correct", "helo")
	require.Error(t, err)
	assert.Equal(t, "helo\n", out)
	assert.Contains(t, err.Error(), "autocorrect request failed")
	assert.Contains(t, stderr, "suggestion fell back")
}

func TestCorrect_RequiresOneWord(t *testing.T) {
	_, _, err := run(t, "correct")
	assert.Error(t, err)
}

func TestNext_JoinsArguments(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.Messages) > 0 {
			prompt = req.Messages[0].Content
		}
		_, _ = io.WriteString(w, `{"message":{"role":"assistant","content":"going."},"done":true}`)
	}))
	t.Cleanup(srv.Close)

	out, _, err := run(t, "--ollama-url", srv.URL, "next", "I", "am")
	require.NoError(t, err)
	assert.Equal(t, "going\n", out)
	assert.Contains(t, prompt, `Next word after: "I am"`)
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noteplus", "config.toml")

	out, _, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = run(t, "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = run(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigShow_AppliesFlags(t *testing.T) {
	out, _, err := run(t, "--model", "phi3:mini", "--debug", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `model = "phi3:mini"`)
	assert.Contains(t, out, `level = "debug"`)
}
