// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package responder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func request() Request {
	return Request{SessionID: "1", Message: model.NewUserMessage("ping", nil)}
}

func TestMock_Reply(t *testing.T) {
	r := NewMock(0)

	reply, err := r.Respond(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "1", reply.SessionID)
	assert.Equal(t, DefaultReply, reply.Content)
	require.Len(t, reply.Steps, 2)
	assert.Equal(t, model.StepThought, reply.Steps[0].Type)
	assert.Equal(t, model.StatusCompleted, reply.Steps[0].Status)
	assert.Equal(t, "Syncing with previous analysis data", reply.Steps[0].Content)
	assert.Equal(t, model.StepPlan, reply.Steps[1].Type)
	assert.Equal(t, model.StatusRunning, reply.Steps[1].Status)
	assert.NoError(t, model.Trace(reply.Steps).Validate())
}

func TestMock_Delay(t *testing.T) {
	r := NewMock(30 * time.Millisecond)

	start := time.Now()
	_, err := r.Respond(context.Background(), request())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMock_Cancel(t *testing.T) {
	r := NewMock(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := r.Respond(ctx, request())
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("Respond did not return after cancel")
	}
}

func TestMock_CancelledBeforeCall(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMock(0).Respond(ctx, request())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMock_StepsAreCopied(t *testing.T) {
	r := NewMock(0)
	a, _ := r.Respond(context.Background(), request())
	a.Steps[0].Content = "mutated"

	b, _ := r.Respond(context.Background(), request())
	assert.Equal(t, "Syncing with previous analysis data", b.Steps[0].Content)
}

func TestFunc(t *testing.T) {
	var r Responder = Func(func(_ context.Context, req Request) (Reply, error) {
		return Reply{SessionID: req.SessionID, Content: "echo: " + req.Message.Content}, nil
	})
	reply, err := r.Respond(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, "echo: ping", reply.Content)
}
