// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package responder

import (
	"context"
	"time"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// Mock defaults.
const (
	DefaultDelay = 1500 * time.Millisecond
	DefaultReply = "I'm looking into the new information you've provided. Processing..."
)

// DefaultSteps returns the canned trace attached to every mock reply. The
// running step never resolves.
func DefaultSteps() []model.TraceStep {
	return []model.TraceStep{
		{ID: "t1", Type: model.StepThought, Content: "Syncing with previous analysis data", Status: model.StatusCompleted},
		{ID: "t2", Type: model.StepPlan, Content: "Checking file signatures", Status: model.StatusRunning},
	}
}

// =============================================================================
// MOCK RESPONDER
// =============================================================================

// Mock answers every message with the same reply after a fixed delay.
type Mock struct {
	Delay   time.Duration
	Content string
	Steps   []model.TraceStep
}

// NewMock creates a mock with the given delay and the default reply.
func NewMock(delay time.Duration) *Mock {
	return &Mock{
		Delay:   delay,
		Content: DefaultReply,
		Steps:   DefaultSteps(),
	}
}

// Respond waits for the delay, then returns the canned reply. A cancelled
// context ends the wait early with ctx.Err().
func (m *Mock) Respond(ctx context.Context, req Request) (Reply, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	steps := make([]model.TraceStep, len(m.Steps))
	copy(steps, m.Steps)
	return Reply{
		SessionID: req.SessionID,
		Content:   m.Content,
		Steps:     steps,
	}, nil
}
