// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for trace parsing and validation.
var (
	ErrUnknownStepType   = errors.New("unknown step type")
	ErrUnknownStepStatus = errors.New("unknown step status")
	ErrInvalidTrace      = errors.New("invalid trace")
)

// =============================================================================
// STEP TYPE
// =============================================================================

// StepType classifies a reasoning step. The set is closed.
type StepType string

const (
	StepThought StepType = "Thought"
	StepAction  StepType = "Action"
	StepSearch  StepType = "Search"
	StepCommand StepType = "Command"
	StepPlan    StepType = "Plan"
)

// StepTypes lists every step type in display order.
var StepTypes = []StepType{StepThought, StepAction, StepSearch, StepCommand, StepPlan}

// String returns the string representation of the step type.
func (t StepType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known step types.
func (t StepType) Valid() bool {
	for _, known := range StepTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseStepType parses a step type case-insensitively.
func ParseStepType(s string) (StepType, error) {
	for _, known := range StepTypes {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStepType, s)
}

// =============================================================================
// STEP STATUS
// =============================================================================

// StepStatus is the progress state of a step.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusRunning   StepStatus = "running"
	StatusCompleted StepStatus = "completed"
	StatusError     StepStatus = "error"
)

// String returns the string representation of the status.
func (s StepStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s StepStatus) Valid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusError:
		return true
	}
	return false
}

// IsTerminal reports whether the step has finished, successfully or not.
func (s StepStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// ParseStepStatus parses a step status case-insensitively.
func ParseStepStatus(s string) (StepStatus, error) {
	st := StepStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStepStatus, s)
	}
	return st, nil
}

// =============================================================================
// TRACE STEP
// =============================================================================

// TraceStep is one entry of an assistant message's reasoning trace.
type TraceStep struct {
	ID      string     `json:"id"`
	Type    StepType   `json:"type"`
	Content string     `json:"content"`
	Status  StepStatus `json:"status"`
	Details string     `json:"details,omitempty"`
}

// HasDetails reports whether the step carries an expandable payload.
func (s TraceStep) HasDetails() bool {
	return s.Details != ""
}

// Trace is an ordered list of steps; order is display order.
type Trace []TraceStep

// Find returns the step with the given id.
func (tr Trace) Find(id string) (TraceStep, bool) {
	for _, s := range tr {
		if s.ID == id {
			return s, true
		}
	}
	return TraceStep{}, false
}

// Unresolved returns the steps that are still pending or running.
func (tr Trace) Unresolved() []TraceStep {
	var out []TraceStep
	for _, s := range tr {
		if !s.Status.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that ids are non-empty and unique within the trace and that
// every type and status is known.
func (tr Trace) Validate() error {
	seen := make(map[string]struct{}, len(tr))
	for i, s := range tr {
		if s.ID == "" {
			return fmt.Errorf("%w: step %d has empty id", ErrInvalidTrace, i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate step id %q", ErrInvalidTrace, s.ID)
		}
		seen[s.ID] = struct{}{}
		if !s.Type.Valid() {
			return fmt.Errorf("%w: step %q: %w", ErrInvalidTrace, s.ID, ErrUnknownStepType)
		}
		if !s.Status.Valid() {
			return fmt.Errorf("%w: step %q: %w", ErrInvalidTrace, s.ID, ErrUnknownStepStatus)
		}
	}
	return nil
}
