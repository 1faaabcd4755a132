// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/euii-ii/NotepadAI/internal/ollama"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeRequester struct {
	mu          sync.Mutex
	corrections []string
	nextWords   []string

	correct func(ctx context.Context, word string) (string, error)
	next    func(ctx context.Context, text string) (string, error)
}

func (f *fakeRequester) Correct(ctx context.Context, word string) (string, error) {
	f.mu.Lock()
	f.corrections = append(f.corrections, word)
	fn := f.correct
	f.mu.Unlock()
	if fn == nil {
		return word, nil
	}
	return fn(ctx, word)
}

func (f *fakeRequester) NextWord(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.nextWords = append(f.nextWords, text)
	fn := f.next
	f.mu.Unlock()
	if fn == nil {
		return "", nil
	}
	return fn(ctx, text)
}

func (f *fakeRequester) correctCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.corrections...)
}

func (f *fakeRequester) nextWordCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.nextWords...)
}

// tickRecorder fires timers immediately and remembers the requested delays.
type tickRecorder struct {
	delays []time.Duration
}

func (r *tickRecorder) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.delays = append(r.delays, d)
	return func() tea.Msg { return fn(time.Time{}) }
}

func newTestEngine(t *testing.T, r Requester, logger *zap.Logger) (*Engine, *tickRecorder) {
	t.Helper()
	e := NewEngine(r, EngineConfig{
		MinWordLength:      3,
		CorrectionDebounce: 500 * time.Millisecond,
		NextWordDebounce:   100 * time.Millisecond,
	}, logger)
	rec := &tickRecorder{}
	e.tick = rec.tick
	t.Cleanup(e.Close)
	return e, rec
}

// drive runs cmd and feeds every resulting message back into the engine
// until nothing is left to do.
func drive(e *Engine, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			queue = append(queue, e.Update(msg))
		}
	}
}

// =============================================================================
// AUTOCORRECT
// =============================================================================

func TestEngine_DebounceCollapsesKeystrokes(t *testing.T) {
	fr := &fakeRequester{correct: func(ctx context.Context, word string) (string, error) {
		return "hello", nil
	}}
	e, rec := newTestEngine(t, fr, nil)

	first := e.ContentChanged("hel", 3)
	second := e.ContentChanged("helo", 4)
	require.NotNil(t, first)
	require.NotNil(t, second)

	// The first timer expires after it was superseded.
	assert.Nil(t, e.Update(first()))
	assert.Equal(t, Pending, e.State(Autocorrect))

	drive(e, second)

	assert.Equal(t, []string{"helo"}, fr.correctCalls())
	assert.Equal(t, "hello", e.Correction())
	assert.Equal(t, Resolved, e.State(Autocorrect))
	assert.Equal(t, "helo", e.CurrentWord())
	assert.True(t, e.Visible())
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, rec.delays)
}

func TestEngine_ShortWordResetsAutocorrect(t *testing.T) {
	fr := &fakeRequester{}
	e, _ := newTestEngine(t, fr, nil)

	pending := e.ContentChanged("hel", 3)
	require.NotNil(t, pending)
	assert.True(t, e.Visible())

	assert.Nil(t, e.ContentChanged("he", 2))
	assert.Equal(t, Idle, e.State(Autocorrect))
	assert.Equal(t, "", e.CurrentWord())
	assert.False(t, e.Visible())

	assert.Nil(t, e.Update(pending()))
	assert.Empty(t, fr.correctCalls())
}

func TestEngine_ShortWordKeepsPanelForNextWord(t *testing.T) {
	e, _ := newTestEngine(t, &fakeRequester{}, nil)

	require.NotNil(t, e.SpacePressed("I am ", 5))
	assert.Nil(t, e.ContentChanged("I am ", 5))

	assert.True(t, e.Visible())
	assert.Equal(t, Pending, e.State(NextWord))
}

func TestEngine_TimeoutFallsBackToWord(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewSuggester(blockingCompleter{}, Options{
		Model:             "gemma2:2b",
		CorrectionTimeout: 20 * time.Millisecond,
		NextWordTimeout:   20 * time.Millisecond,
	})
	e, _ := newTestEngine(t, s, zap.New(core))

	drive(e, e.ContentChanged("helo", 4))

	assert.Equal(t, Fallback, e.State(Autocorrect))
	assert.Equal(t, "helo", e.Correction())

	entries := logs.FilterMessage("suggestion fell back").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "timeout", fields["reason"])
	assert.Equal(t, "autocorrect", fields["channel"])
}

func TestEngine_ErrorFallbackIgnoresRequesterValue(t *testing.T) {
	fr := &fakeRequester{
		correct: func(ctx context.Context, word string) (string, error) {
			return "garbage", errors.New("boom")
		},
		next: func(ctx context.Context, text string) (string, error) {
			return "garbage", errors.New("boom")
		},
	}
	e, _ := newTestEngine(t, fr, nil)

	drive(e, e.SuggestNow("I saw teh"))

	assert.Equal(t, "teh", e.Correction())
	assert.Equal(t, "", e.NextWord())
	assert.Equal(t, Fallback, e.State(Autocorrect))
	assert.Equal(t, Fallback, e.State(NextWord))
}

// blockingCompleter never answers before the context ends.
type blockingCompleter struct{}

func (blockingCompleter) ChatWithOptions(ctx context.Context, _ string, _ []ollama.Message, _ *ollama.Options) (*ollama.ChatResponse, error) {
	<-ctx.Done()
	return nil, &ollama.ClientError{Type: ollama.ErrTypeTimeout, Message: "request timed out", Cause: ctx.Err()}
}

// =============================================================================
// SUPERSESSION
// =============================================================================

func TestEngine_SupersededRequestIsCanceledAndDropped(t *testing.T) {
	fr := &fakeRequester{correct: func(ctx context.Context, word string) (string, error) {
		<-ctx.Done()
		return word, ctx.Err()
	}}
	e, _ := newTestEngine(t, fr, nil)

	request := e.Update(e.ContentChanged("helo", 4)())
	require.NotNil(t, request)
	assert.Equal(t, InFlight, e.State(Autocorrect))

	done := make(chan tea.Msg, 1)
	go func() { done <- request() }()

	require.NotNil(t, e.ContentChanged("hello", 5))

	var stale tea.Msg
	select {
	case stale = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded request was not canceled")
	}

	res, ok := stale.(ResultMsg)
	require.True(t, ok)
	assert.ErrorIs(t, res.Err, context.Canceled)

	assert.Nil(t, e.Update(stale))
	assert.Equal(t, Pending, e.State(Autocorrect))
	assert.Equal(t, "", e.Correction())
}

func TestEngine_IgnoresOtherSessions(t *testing.T) {
	first, _ := newTestEngine(t, &fakeRequester{}, nil)
	second, _ := newTestEngine(t, &fakeRequester{}, nil)
	require.NotEqual(t, first.Session(), second.Session())

	fire := first.ContentChanged("helo", 4)()
	require.NotNil(t, second.ContentChanged("helo", 4))

	assert.Nil(t, second.Update(fire))
	assert.Equal(t, Pending, second.State(Autocorrect))
}

func TestEngine_CloseDropsInFlight(t *testing.T) {
	fr := &fakeRequester{correct: func(ctx context.Context, word string) (string, error) {
		<-ctx.Done()
		return word, ctx.Err()
	}}
	e, _ := newTestEngine(t, fr, nil)

	request := e.Update(e.ContentChanged("helo", 4)())
	require.NotNil(t, request)

	e.Close()
	msg := request()

	assert.Nil(t, e.Update(msg))
	assert.Equal(t, Idle, e.State(Autocorrect))
	assert.False(t, e.Visible())
}

// =============================================================================
// NEXT WORD
// =============================================================================

func TestEngine_SpacePressed(t *testing.T) {
	fr := &fakeRequester{next: func(ctx context.Context, text string) (string, error) {
		return "going", nil
	}}
	e, rec := newTestEngine(t, fr, nil)

	drive(e, e.SpacePressed("I am ", 5))

	assert.Equal(t, []string{"I am"}, fr.nextWordCalls())
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, rec.delays)
	assert.Equal(t, "going", e.NextWord())
	assert.Equal(t, Resolved, e.State(NextWord))
	assert.Equal(t, Idle, e.State(Autocorrect))
}

func TestEngine_SpacePressedBlankIgnored(t *testing.T) {
	e, _ := newTestEngine(t, &fakeRequester{}, nil)

	assert.Nil(t, e.SpacePressed("   ", 3))
	assert.Equal(t, Idle, e.State(NextWord))
	assert.False(t, e.Visible())
}

func TestEngine_SuggestNowSkipsDebounce(t *testing.T) {
	fr := &fakeRequester{
		correct: func(ctx context.Context, word string) (string, error) { return "the", nil },
		next:    func(ctx context.Context, text string) (string, error) { return "cat", nil },
	}
	e, rec := newTestEngine(t, fr, nil)

	drive(e, e.SuggestNow("  I saw teh  "))

	assert.Empty(t, rec.delays)
	assert.Equal(t, []string{"teh"}, fr.correctCalls())
	assert.Equal(t, []string{"I saw teh"}, fr.nextWordCalls())
	assert.Equal(t, "the", e.Correction())
	assert.Equal(t, "cat", e.NextWord())

	assert.Nil(t, e.SuggestNow(" \n "))
}

// =============================================================================
// APPLICATION
// =============================================================================

func TestEngine_ApplyCorrection(t *testing.T) {
	fr := &fakeRequester{correct: func(ctx context.Context, word string) (string, error) {
		return "the", nil
	}}
	e, _ := newTestEngine(t, fr, nil)

	drive(e, e.ContentChanged("I saw teh", 9))

	out, ok := e.ApplyCorrection("I saw teh")
	require.True(t, ok)
	assert.Equal(t, "I saw the ", out)
	assert.False(t, e.Visible())
	assert.Equal(t, Idle, e.State(Autocorrect))
	assert.Equal(t, Idle, e.State(NextWord))
	assert.Equal(t, "", e.Correction())
}

func TestEngine_ApplyNextWord(t *testing.T) {
	fr := &fakeRequester{next: func(ctx context.Context, text string) (string, error) {
		return "going", nil
	}}
	e, _ := newTestEngine(t, fr, nil)

	drive(e, e.SpacePressed("I am ", 5))

	out, ok := e.ApplyNextWord("I am ")
	require.True(t, ok)
	assert.Equal(t, "I am going ", out)
	assert.False(t, e.Visible())
	assert.Equal(t, Idle, e.State(NextWord))
}

func TestEngine_ApplyWithoutSuggestion(t *testing.T) {
	e, _ := newTestEngine(t, &fakeRequester{}, nil)

	out, ok := e.ApplyCorrection("teh")
	assert.False(t, ok)
	assert.Equal(t, "teh", out)

	out, ok = e.ApplyNextWord("I am ")
	assert.False(t, ok)
	assert.Equal(t, "I am ", out)
}

func TestEngine_LoadingStates(t *testing.T) {
	e, _ := newTestEngine(t, &fakeRequester{}, nil)

	fire := e.ContentChanged("helo", 4)
	assert.True(t, e.Loading(Autocorrect))
	assert.False(t, e.Loading(NextWord))

	request := e.Update(fire())
	assert.Equal(t, InFlight, e.State(Autocorrect))
	assert.True(t, e.Loading(Autocorrect))

	e.Update(request())
	assert.False(t, e.Loading(Autocorrect))
	assert.Equal(t, Idle, e.State(Channel(42)))
}

func TestChannelAndStateNames(t *testing.T) {
	assert.Equal(t, "autocorrect", Autocorrect.String())
	assert.Equal(t, "next_word", NextWord.String())
	assert.Equal(t, "in_flight", InFlight.String())
	assert.Equal(t, "fallback", Fallback.String())
}
