// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Agent"},
		{Role("other"), "other"},
	}
	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage_CopiesSlices(t *testing.T) {
	files := []Attachment{{Name: "a.txt", MimeType: "text/plain"}}
	steps := []TraceStep{{ID: "s1", Type: StepThought, Status: StatusCompleted}}

	msg := NewMessage(RoleAssistant, "hi", files, steps)
	files[0].Name = "changed"
	steps[0].Content = "changed"

	assert.Equal(t, "a.txt", msg.Files[0].Name)
	assert.Empty(t, msg.Steps[0].Content)
	assert.True(t, strings.HasPrefix(msg.ID, "msg_"))
	assert.False(t, msg.Timestamp.IsZero())
}

func TestNewMessageID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewMessageID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestMessage_HasTrace(t *testing.T) {
	assert.False(t, NewAssistantMessage("x", nil).HasTrace())
	assert.False(t, NewAssistantMessage("x", []TraceStep{}).HasTrace())
	assert.True(t, NewAssistantMessage("x", []TraceStep{{ID: "a"}}).HasTrace())
	assert.False(t, NewUserMessage("x", nil).HasTrace())
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		max  int
		want string
	}{
		{"short", Message{Content: "ping"}, 10, "ping"},
		{"collapses whitespace", Message{Content: "a\n\n  b"}, 10, "a b"},
		{"truncates", Message{Content: "memory leak in production"}, 10, "memory ..."},
		{"file fallback", Message{Files: []Attachment{{Name: "logs.txt"}}}, 20, "logs.txt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.msg.Preview(tc.max); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.max, got, tc.want)
			}
		})
	}
}

// =============================================================================
// TRACE TESTS
// =============================================================================

func TestParseStepType(t *testing.T) {
	for _, st := range StepTypes {
		got, err := ParseStepType(strings.ToLower(st.String()))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStepType("Reflection")
	assert.True(t, errors.Is(err, ErrUnknownStepType))
}

func TestParseStepStatus(t *testing.T) {
	got, err := ParseStepStatus(" Running ")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, got)

	_, err = ParseStepStatus("done")
	assert.ErrorIs(t, err, ErrUnknownStepStatus)
}

func TestStepStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusError.IsTerminal())
}

func TestTrace_Validate(t *testing.T) {
	ok := Trace{
		{ID: "t1", Type: StepThought, Status: StatusCompleted},
		{ID: "t2", Type: StepPlan, Status: StatusRunning},
	}
	require.NoError(t, ok.Validate())

	tests := []struct {
		name  string
		trace Trace
		cause error
	}{
		{"empty id", Trace{{Type: StepThought, Status: StatusPending}}, ErrInvalidTrace},
		{"duplicate id", Trace{
			{ID: "a", Type: StepThought, Status: StatusPending},
			{ID: "a", Type: StepPlan, Status: StatusPending},
		}, ErrInvalidTrace},
		{"bad type", Trace{{ID: "a", Type: "Dream", Status: StatusPending}}, ErrUnknownStepType},
		{"bad status", Trace{{ID: "a", Type: StepAction, Status: "paused"}}, ErrUnknownStepStatus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.trace.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestTrace_FindAndUnresolved(t *testing.T) {
	tr := Trace{
		{ID: "t1", Type: StepThought, Status: StatusCompleted},
		{ID: "t2", Type: StepPlan, Status: StatusRunning},
		{ID: "t3", Type: StepSearch, Status: StatusPending},
	}

	step, ok := tr.Find("t2")
	require.True(t, ok)
	assert.Equal(t, StepPlan, step.Type)

	_, ok = tr.Find("missing")
	assert.False(t, ok)

	unresolved := tr.Unresolved()
	require.Len(t, unresolved, 2)
	assert.Equal(t, "t2", unresolved[0].ID)
	assert.Equal(t, "t3", unresolved[1].ID)
}

// =============================================================================
// SESSION TESTS
// =============================================================================

func TestSession_DateString(t *testing.T) {
	s := Session{ID: "1", Title: "x", Date: MustDate("2025-12-28")}
	assert.Equal(t, "2025-12-28", s.DateString())
	assert.Equal(t, "", Session{}.DateString())
}

func TestDay(t *testing.T) {
	ts := time.Date(2026, 3, 4, 17, 45, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), Day(ts))
}

// =============================================================================
// LOG TESTS
// =============================================================================

func newTestLog() *Log {
	l := NewLog()
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	l.Clock = func() time.Time { return base.Add(time.Duration(n) * time.Minute) }
	l.NewID = func() string {
		n++
		return fmt.Sprintf("m%d", n)
	}
	return l
}

func TestLog_AppendOrder(t *testing.T) {
	l := newTestLog()

	u := l.AppendUser("ping", nil)
	a := l.AppendAssistant("pong", []TraceStep{{ID: "t1", Type: StepThought, Status: StatusCompleted}})

	msgs := l.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, u.ID, msgs[0].ID)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, a.ID, msgs[1].ID)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.True(t, msgs[1].HasTrace())
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)
}

func TestLog_AllowsEmptyContent(t *testing.T) {
	l := newTestLog()
	msg := l.AppendUser("", []Attachment{{Name: "trace.log", MimeType: "text/plain"}})
	assert.Empty(t, msg.Content)
	assert.Equal(t, 1, l.Len())
}

func TestLog_MessagesAreCopies(t *testing.T) {
	l := newTestLog()
	l.AppendUser("ping", []Attachment{{Name: "a.txt"}})

	msgs := l.Messages()
	msgs[0].Content = "mutated"
	msgs[0].Files[0].Name = "mutated"

	again := l.Messages()
	assert.Equal(t, "ping", again[0].Content)
	assert.Equal(t, "a.txt", again[0].Files[0].Name)
}

func TestLog_Clear(t *testing.T) {
	l := newTestLog()
	l.AppendUser("one", nil)
	l.AppendAssistant("two", nil)

	l.Clear()
	assert.True(t, l.IsEmpty())
	_, ok := l.Last()
	assert.False(t, ok)

	l.AppendUser("three", nil)
	assert.Equal(t, 1, l.Len())
}

func TestLog_LastAssistant(t *testing.T) {
	l := newTestLog()
	_, ok := l.LastAssistant()
	assert.False(t, ok)

	l.AppendAssistant("first", nil)
	l.AppendUser("question", nil)

	last, ok := l.LastAssistant()
	require.True(t, ok)
	assert.Equal(t, "first", last.Content)

	tail, _ := l.Last()
	assert.Equal(t, "question", tail.Content)
}
