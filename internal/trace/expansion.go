// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trace tracks which reasoning steps are expanded and which step has
// keyboard focus in the chat thread.
package trace

// =============================================================================
// EXPANSION SET
// =============================================================================

// Expansion is the set of expanded step ids for one trace. The zero value is
// an empty set ready to use.
type Expansion struct {
	ids map[string]struct{}
}

// Toggle expands a collapsed step or collapses an expanded one.
func (e *Expansion) Toggle(id string) {
	if e.ids == nil {
		e.ids = make(map[string]struct{})
	}
	if _, ok := e.ids[id]; ok {
		delete(e.ids, id)
		return
	}
	e.ids[id] = struct{}{}
}

// IsExpanded reports whether the step is expanded.
func (e *Expansion) IsExpanded(id string) bool {
	if e == nil {
		return false
	}
	_, ok := e.ids[id]
	return ok
}

// Len returns the number of expanded steps.
func (e *Expansion) Len() int {
	if e == nil {
		return 0
	}
	return len(e.ids)
}

// Reset collapses every step.
func (e *Expansion) Reset() {
	e.ids = nil
}

// =============================================================================
// PER-MESSAGE REGISTRY
// =============================================================================

// Expansions holds one Expansion per assistant message on screen. Step ids
// are only unique within a message, so state is keyed by message first.
type Expansions struct {
	byMessage map[string]*Expansion
}

// NewExpansions creates an empty registry.
func NewExpansions() *Expansions {
	return &Expansions{byMessage: make(map[string]*Expansion)}
}

// For returns the expansion set of a message, creating it on first use.
func (x *Expansions) For(messageID string) *Expansion {
	if x.byMessage == nil {
		x.byMessage = make(map[string]*Expansion)
	}
	e, ok := x.byMessage[messageID]
	if !ok {
		e = &Expansion{}
		x.byMessage[messageID] = e
	}
	return e
}

// Toggle flips one step of one message.
func (x *Expansions) Toggle(messageID, stepID string) {
	x.For(messageID).Toggle(stepID)
}

// IsExpanded reports whether a step of a message is expanded. A nil
// registry has everything collapsed.
func (x *Expansions) IsExpanded(messageID, stepID string) bool {
	if x == nil {
		return false
	}
	e, ok := x.byMessage[messageID]
	if !ok {
		return false
	}
	return e.IsExpanded(stepID)
}

// Reset drops all state. Call it when the displayed session changes.
func (x *Expansions) Reset() {
	x.byMessage = make(map[string]*Expansion)
}
