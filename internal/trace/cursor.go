// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import "github.com/jeranaias/tracechat-tui/internal/model"

// Ref addresses one step of one message.
type Ref struct {
	MessageID string
	StepID    string
}

// Refs flattens the traces of msgs into display order.
func Refs(msgs []model.Message) []Ref {
	var refs []Ref
	for _, m := range msgs {
		for _, s := range m.Steps {
			refs = append(refs, Ref{MessageID: m.ID, StepID: s.ID})
		}
	}
	return refs
}

// Cursor is keyboard focus over the steps of the visible thread.
type Cursor struct {
	refs []Ref
	pos  int
}

// Sync replaces the focusable steps, keeping focus on the same step when it
// is still present and clamping otherwise.
func (c *Cursor) Sync(refs []Ref) {
	var current Ref
	hadCurrent := false
	if c.pos >= 0 && c.pos < len(c.refs) {
		current = c.refs[c.pos]
		hadCurrent = true
	}
	c.refs = refs
	if hadCurrent {
		for i, r := range refs {
			if r == current {
				c.pos = i
				return
			}
		}
	}
	c.clamp()
}

// Len returns the number of focusable steps.
func (c *Cursor) Len() int {
	return len(c.refs)
}

// Current returns the focused step.
func (c *Cursor) Current() (Ref, bool) {
	if len(c.refs) == 0 {
		return Ref{}, false
	}
	return c.refs[c.pos], true
}

// Next moves focus down, stopping at the last step.
func (c *Cursor) Next() {
	c.pos++
	c.clamp()
}

// Prev moves focus up, stopping at the first step.
func (c *Cursor) Prev() {
	c.pos--
	c.clamp()
}

// Last focuses the most recent step.
func (c *Cursor) Last() {
	c.pos = len(c.refs) - 1
	c.clamp()
}

// Is reports whether r is the focused step.
func (c *Cursor) Is(r Ref) bool {
	cur, ok := c.Current()
	return ok && cur == r
}

func (c *Cursor) clamp() {
	if c.pos >= len(c.refs) {
		c.pos = len(c.refs) - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
}
