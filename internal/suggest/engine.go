// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/config"
	"github.com/euii-ii/NotepadAI/internal/ollama"
)

// sessionCounter hands out engine session ids. Messages from a closed engine
// never match a newer one.
var sessionCounter atomic.Uint64

// =============================================================================
// CONFIGURATION
// =============================================================================

// EngineConfig holds trigger thresholds and debounce windows.
type EngineConfig struct {
	MinWordLength      int
	CorrectionDebounce time.Duration
	NextWordDebounce   time.Duration
}

// EngineConfigFrom extracts the engine settings from cfg.
func EngineConfigFrom(cfg config.SuggestConfig) EngineConfig {
	return EngineConfig{
		MinWordLength:      cfg.MinWordLength,
		CorrectionDebounce: cfg.CorrectionDebounce(),
		NextWordDebounce:   cfg.NextWordDebounce(),
	}
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine runs the autocorrect and next-word channels for one editor session.
//
// All methods must be called from the goroutine that owns the Bubble Tea
// model. The tea.Cmds it returns do their blocking work elsewhere and report
// back through FireMsg and ResultMsg, which must be passed to Update.
type Engine struct {
	id        uint64
	requester Requester
	cfg       EngineConfig
	logger    *zap.Logger

	// tick schedules debounce timers; tea.Tick outside of tests.
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	ctx       context.Context
	cancelAll context.CancelFunc

	channels [numChannels]channelState
	word     string
	visible  bool
}

// NewEngine creates an engine with a fresh session id.
func NewEngine(r Requester, cfg EngineConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		id:        sessionCounter.Add(1),
		requester: r,
		cfg:       cfg,
		tick:      tea.Tick,
		ctx:       ctx,
		cancelAll: cancel,
	}
	e.logger = logger.With(zap.Uint64("session", e.id))
	return e
}

// Session returns the engine's session id.
func (e *Engine) Session() uint64 { return e.id }

// CurrentWord returns the word autocorrect is working on.
func (e *Engine) CurrentWord() string { return e.word }

// Visible reports whether the suggestion panel should be shown.
func (e *Engine) Visible() bool { return e.visible }

// Correction returns the autocorrect suggestion, or "" if none.
func (e *Engine) Correction() string { return e.channels[Autocorrect].suggestion }

// NextWord returns the next-word suggestion, or "" if none.
func (e *Engine) NextWord() string { return e.channels[NextWord].suggestion }

// State returns the lifecycle state of ch.
func (e *Engine) State(ch Channel) State {
	if !ch.valid() {
		return Idle
	}
	return e.channels[ch].state
}

// Loading reports whether ch is waiting on its timer or its request.
func (e *Engine) Loading(ch Channel) bool {
	s := e.State(ch)
	return s == Pending || s == InFlight
}

// =============================================================================
// TRIGGERS
// =============================================================================

// ContentChanged reacts to an edit. text is the full content and cursor the
// rune offset of the caret. A word of at least MinWordLength characters
// restarts the autocorrect debounce; a shorter one resets the channel.
func (e *Engine) ContentChanged(text string, cursor int) tea.Cmd {
	word := CurrentWord(text, cursor)
	ch := &e.channels[Autocorrect]

	if WordLen(word) < e.cfg.MinWordLength {
		ch.reset()
		e.word = ""
		e.visible = e.channels[NextWord].state != Idle
		return nil
	}

	e.word = word
	e.visible = true
	seq := ch.arm(word)
	e.logger.Debug("autocorrect scheduled", zap.String("word", word), zap.Uint64("seq", seq))
	return e.schedule(Autocorrect, seq, e.cfg.CorrectionDebounce)
}

// SpacePressed starts the next-word debounce for the text before the
// cursor. Blank text is ignored.
func (e *Engine) SpacePressed(text string, cursor int) tea.Cmd {
	before := strings.TrimSpace(TextBeforeCursor(text, cursor))
	if before == "" {
		return nil
	}

	e.visible = true
	seq := e.channels[NextWord].arm(before)
	e.logger.Debug("next word scheduled", zap.Int("chars", len(before)), zap.Uint64("seq", seq))
	return e.schedule(NextWord, seq, e.cfg.NextWordDebounce)
}

// SuggestNow runs both channels immediately, without debounce, on the last
// token and the full trimmed text. Blank text is ignored.
func (e *Engine) SuggestNow(text string) tea.Cmd {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	e.word = lastToken(trimmed)
	e.visible = true
	e.channels[Autocorrect].arm(e.word)
	e.channels[NextWord].arm(trimmed)
	e.logger.Debug("manual suggestion requested", zap.String("word", e.word))
	return tea.Batch(e.issue(Autocorrect), e.issue(NextWord))
}

func (e *Engine) schedule(ch Channel, seq uint64, d time.Duration) tea.Cmd {
	id := e.id
	return e.tick(d, func(time.Time) tea.Msg {
		return FireMsg{Session: id, Channel: ch, Seq: seq}
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update consumes FireMsg and ResultMsg addressed to this engine. Other
// messages, and messages from superseded triggers, yield nil.
func (e *Engine) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FireMsg:
		if msg.Session != e.id || !msg.Channel.valid() {
			return nil
		}
		ch := &e.channels[msg.Channel]
		if msg.Seq != ch.seq || ch.state != Pending {
			return nil
		}
		return e.issue(msg.Channel)

	case ResultMsg:
		if msg.Session != e.id || !msg.Channel.valid() {
			return nil
		}
		ch := &e.channels[msg.Channel]
		if msg.Seq != ch.seq || ch.state != InFlight {
			e.logger.Debug("stale result dropped",
				zap.Stringer("channel", msg.Channel),
				zap.Uint64("seq", msg.Seq),
				zap.Uint64("current", ch.seq))
			return nil
		}
		ch.stop()
		e.resolve(msg.Channel, ch, msg)
	}
	return nil
}

func (e *Engine) resolve(kind Channel, ch *channelState, msg ResultMsg) {
	if msg.Err == nil {
		ch.state = Resolved
		ch.suggestion = msg.Suggestion
		e.logger.Debug("suggestion resolved",
			zap.Stringer("channel", kind),
			zap.String("suggestion", msg.Suggestion),
			zap.Duration("elapsed", msg.Elapsed))
		return
	}

	ch.state = Fallback
	ch.suggestion = fallbackFor(kind, ch.query)
	e.logger.Warn("suggestion fell back",
		zap.Stringer("channel", kind),
		zap.String("reason", failureReason(msg.Err)),
		zap.Duration("elapsed", msg.Elapsed),
		zap.Error(msg.Err))
}

// issue sends the request for ch's current query.
func (e *Engine) issue(kind Channel) tea.Cmd {
	ch := &e.channels[kind]
	ctx, cancel := context.WithCancel(e.ctx)
	ch.cancel = cancel
	ch.state = InFlight

	id, seq, query, req := e.id, ch.seq, ch.query, e.requester
	e.logger.Debug("request issued", zap.Stringer("channel", kind), zap.Uint64("seq", seq))

	return func() tea.Msg {
		start := time.Now()
		var (
			s   string
			err error
		)
		switch kind {
		case Autocorrect:
			s, err = req.Correct(ctx, query)
		case NextWord:
			s, err = req.NextWord(ctx, query)
		}
		return ResultMsg{
			Session:    id,
			Channel:    kind,
			Seq:        seq,
			Query:      query,
			Suggestion: s,
			Err:        err,
			Elapsed:    time.Since(start),
		}
	}
}

// =============================================================================
// APPLICATION
// =============================================================================

// ApplyCorrection replaces the last token of content with the autocorrect
// suggestion. It reports false, leaving content untouched, when there is no
// suggestion. On success the panel hides and both channels return to Idle.
func (e *Engine) ApplyCorrection(content string) (string, bool) {
	s := e.channels[Autocorrect].suggestion
	if s == "" || e.word == "" {
		return content, false
	}
	e.dismiss()
	return ApplyCorrection(content, s), true
}

// ApplyNextWord appends the next-word suggestion to content. It reports
// false when there is none. On success the panel hides and both channels
// return to Idle.
func (e *Engine) ApplyNextWord(content string) (string, bool) {
	s := e.channels[NextWord].suggestion
	if s == "" {
		return content, false
	}
	e.dismiss()
	return ApplyNextWord(content, s), true
}

// dismiss hides the panel and returns both channels to Idle.
func (e *Engine) dismiss() {
	for i := range e.channels {
		e.channels[i].reset()
	}
	e.word = ""
	e.visible = false
}

// Close cancels every request the engine started. Results that arrive
// afterwards are dropped.
func (e *Engine) Close() {
	e.dismiss()
	e.cancelAll()
}

// =============================================================================
// HELPERS
// =============================================================================

func failureReason(err error) string {
	var ce *ollama.ClientError
	switch {
	case errors.As(err, &ce):
		return ce.Type.String()
	case errors.Is(err, context.DeadlineExceeded):
		return ollama.ErrTypeTimeout.String()
	case errors.Is(err, context.Canceled):
		return ollama.ErrTypeCanceled.String()
	default:
		return ollama.ErrTypeUnknown.String()
	}
}
