// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder produces assistant replies to user messages.
package responder

import (
	"context"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// Request is one user turn to answer.
type Request struct {
	// SessionID is the session the user message was sent in. The reply is
	// delivered there even if the user has switched away.
	SessionID string
	Message   model.Message
}

// Reply is the assistant's answer to a Request.
type Reply struct {
	SessionID string
	Content   string
	Steps     []model.TraceStep
}

// Responder answers user messages. Implementations may block; callers run
// them off the UI goroutine.
type Responder interface {
	Respond(ctx context.Context, req Request) (Reply, error)
}

// Func adapts a plain function to the Responder interface.
type Func func(ctx context.Context, req Request) (Reply, error)

// Respond calls f.
func (f Func) Respond(ctx context.Context, req Request) (Reply, error) {
	return f(ctx, req)
}
