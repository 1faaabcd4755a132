// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
//
// Only the two endpoints the editor needs are implemented: non-streaming
// chat completions on /api/chat and model listing on /api/tags.
//
// # Key Types
//
//   - Client: HTTP client for Ollama API communication
//   - Message: Chat message with role and content
//   - ChatRequest: Request structure for chat completions
//   - ChatResponse: Response structure with message and metrics
//   - ClientError: Typed error carrying an ErrorType
//
// # Usage
//
//	client := ollama.NewClient()
//	resp, err := client.ChatWithOptions(ctx, "gemma2:2b",
//	    []ollama.Message{ollama.NewUserMessage("Hello")},
//	    &ollama.Options{Temperature: 0, NumPredict: 3})
//	if errors.Is(err, ollama.ErrTimeout) {
//	    // fall back
//	}
package ollama
