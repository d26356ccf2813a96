// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for sessions, messages and traces.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/tracechat-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Agent"
	default:
		return string(r)
	}
}

// =============================================================================
// ATTACHMENT
// =============================================================================

// Attachment is the metadata of a file sent with a message.
// File contents are never read or stored.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in a session's log. Messages are values and are
// never modified once appended.
type Message struct {
	ID        string       `json:"id"`
	Role      Role         `json:"role"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
	Files     []Attachment `json:"files,omitempty"`

	// Steps is the reasoning trace of an assistant message. Nil means no trace.
	Steps []TraceStep `json:"steps,omitempty"`
}

// NewMessage creates a message with a fresh id and the current time.
// The files and steps slices are copied.
func NewMessage(role Role, content string, files []Attachment, steps []TraceStep) Message {
	return Message{
		ID:        NewMessageID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Files:     cloneAttachments(files),
		Steps:     cloneSteps(steps),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string, files []Attachment) Message {
	return NewMessage(RoleUser, content, files, nil)
}

// NewAssistantMessage creates an assistant message with an optional trace.
func NewAssistantMessage(content string, steps []TraceStep) Message {
	return NewMessage(RoleAssistant, content, nil, steps)
}

// NewMessageID returns a unique message identifier.
func NewMessageID() string {
	return "msg_" + uuid.NewString()
}

// IsUser reports whether the message was written by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsAssistant reports whether the message came from the agent.
func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// HasTrace reports whether the message carries reasoning steps to display.
func (m Message) HasTrace() bool {
	return len(m.Steps) > 0
}

// HasFiles reports whether the message carries attachments.
func (m Message) HasFiles() bool {
	return len(m.Files) > 0
}

// Preview returns a single-line preview of the content truncated to maxLen runes.
func (m Message) Preview(maxLen int) string {
	content := strings.Join(strings.Fields(m.Content), " ")
	if content == "" && len(m.Files) > 0 {
		content = m.Files[0].Name
	}
	return util.TruncateRunes(content, maxLen)
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	m.Files = cloneAttachments(m.Files)
	m.Steps = cloneSteps(m.Steps)
	return m
}

func cloneAttachments(files []Attachment) []Attachment {
	if len(files) == 0 {
		return nil
	}
	out := make([]Attachment, len(files))
	copy(out, files)
	return out
}

func cloneSteps(steps []TraceStep) []TraceStep {
	if len(steps) == 0 {
		return nil
	}
	out := make([]TraceStep, len(steps))
	copy(out, steps)
	return out
}
