// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sync"
	"time"
)

// =============================================================================
// MESSAGE LOG
// =============================================================================

// Log is the append-only, chronologically ordered message list of one
// session. Messages cannot be edited or removed individually; Clear empties
// the whole log.
type Log struct {
	mu       sync.RWMutex
	messages []Message

	// Clock and NewID may be replaced in tests.
	Clock func() time.Time
	NewID func() string
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{
		messages: make([]Message, 0),
		Clock:    time.Now,
		NewID:    NewMessageID,
	}
}

// Append stores a prepared message as-is. Seed data uses it to keep fixed
// ids and timestamps.
func (l *Log) Append(msg Message) Message {
	msg = msg.Clone()
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg.Clone()
}

// AppendUser appends a user message with the given content and attachments.
func (l *Log) AppendUser(content string, files []Attachment) Message {
	return l.Append(l.build(RoleUser, content, files, nil))
}

// AppendAssistant appends an assistant message with an optional trace.
func (l *Log) AppendAssistant(content string, steps []TraceStep) Message {
	return l.Append(l.build(RoleAssistant, content, nil, steps))
}

func (l *Log) build(role Role, content string, files []Attachment, steps []TraceStep) Message {
	clock, newID := l.Clock, l.NewID
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = NewMessageID
	}
	return Message{
		ID:        newID(),
		Role:      role,
		Content:   content,
		Timestamp: clock(),
		Files:     files,
		Steps:     steps,
	}
}

// Clear removes every message.
func (l *Log) Clear() {
	l.mu.Lock()
	l.messages = make([]Message, 0)
	l.mu.Unlock()
}

// Messages returns a copy of the log in insertion order.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Message, len(l.messages))
	for i, m := range l.messages {
		out[i] = m.Clone()
	}
	return out
}

// Len returns the number of messages.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// IsEmpty reports whether the log has no messages.
func (l *Log) IsEmpty() bool {
	return l.Len() == 0
}

// Last returns the most recent message.
func (l *Log) Last() (Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1].Clone(), true
}

// LastAssistant returns the most recent assistant message.
func (l *Log) LastAssistant() (Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Role == RoleAssistant {
			return l.messages[i].Clone(), true
		}
	}
	return Message{}, false
}
