// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/euii-ii/NotepadAI/internal/config"
	"github.com/euii-ii/NotepadAI/internal/ollama"
)

// =============================================================================
// INTERFACES
// =============================================================================

// Completer sends a single non-streaming chat request.
// *ollama.Client satisfies it.
type Completer interface {
	ChatWithOptions(ctx context.Context, model string, messages []ollama.Message, opts *ollama.Options) (*ollama.ChatResponse, error)
}

// Requester produces suggestions for the two channels. On error the
// returned string is still the channel's fallback value.
type Requester interface {
	Correct(ctx context.Context, word string) (string, error)
	NextWord(ctx context.Context, text string) (string, error)
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Suggester.
type Options struct {
	Model string

	CorrectionTimeout time.Duration
	NextWordTimeout   time.Duration

	NumPredict int
	TopK       int
	TopP       float64

	// RequestsPerSecond <= 0 disables rate limiting.
	RequestsPerSecond float64
	Burst             int
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig builds Options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	s := cfg.Suggest
	return Options{
		Model:             cfg.Ollama.Model,
		CorrectionTimeout: s.CorrectionTimeout(),
		NextWordTimeout:   s.NextWordTimeout(),
		NumPredict:        s.NumPredict,
		TopK:              s.TopK,
		TopP:              s.TopP,
		RequestsPerSecond: s.RequestsPerSecond,
		Burst:             s.Burst,
	}
}

// =============================================================================
// SUGGESTER
// =============================================================================

// Suggester turns words and text into model requests and model replies into
// single-token suggestions. It is safe for concurrent use.
type Suggester struct {
	completer Completer
	opts      Options
	limiter   *rate.Limiter
}

// NewSuggester creates a Suggester backed by c.
func NewSuggester(c Completer, opts Options) *Suggester {
	s := &Suggester{completer: c, opts: opts}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return s
}

// Options returns the options the Suggester was built with.
func (s *Suggester) Options() Options {
	return s.opts
}

// Correct returns the spelling-corrected form of word. On any failure, or
// when the reply holds no usable token, word itself is returned.
func (s *Suggester) Correct(ctx context.Context, word string) (string, error) {
	reply, err := s.complete(ctx, CorrectionPrompt(word), s.opts.CorrectionTimeout)
	if err != nil {
		return word, err
	}
	if tok := ExtractToken(reply); tok != "" {
		return tok, nil
	}
	return word, nil
}

// NextWord returns the word predicted to follow text, or "" on failure.
func (s *Suggester) NextWord(ctx context.Context, text string) (string, error) {
	reply, err := s.complete(ctx, NextWordPrompt(text), s.opts.NextWordTimeout)
	if err != nil {
		return "", err
	}
	return ExtractToken(reply), nil
}

func (s *Suggester) complete(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", limiterError(ctx, err)
		}
	}

	opts := &ollama.Options{
		Temperature: 0,
		NumPredict:  s.opts.NumPredict,
		TopK:        s.opts.TopK,
		TopP:        s.opts.TopP,
	}
	resp, err := s.completer.ChatWithOptions(ctx, s.opts.Model, []ollama.Message{ollama.NewUserMessage(prompt)}, opts)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ollama.ErrInvalidResponse
	}
	return resp.Message.Content, nil
}

// limiterError maps a rate.Limiter.Wait failure onto the client's error
// types. Wait fails early when the deadline would pass before a token frees
// up, which is a timeout from the caller's point of view.
func limiterError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return &ollama.ClientError{Type: ollama.ErrTypeCanceled, Message: "request canceled", Cause: err}
	}
	return &ollama.ClientError{Type: ollama.ErrTypeTimeout, Message: "rate limited", Cause: err}
}
