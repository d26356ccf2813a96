// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/tracechat-tui/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration problem
	ExitConfigError = 3
	// ExitInterrupted indicates the user cancelled the operation
	ExitInterrupted = 130
)

// =============================================================================
// COMMAND ERROR
// =============================================================================

// CommandError is an error raised by a command, with context for display.
type CommandError struct {
	Command string // e.g. "ask"
	Action  string // what was being attempted
	Reason  string // optional human explanation
	Err     error
	Code    int // exit code; zero means derive from Err
}

func (e *CommandError) Error() string {
	var b strings.Builder
	if e.Command != "" {
		b.WriteString(e.Command)
		b.WriteString(": ")
	}
	if e.Action != "" {
		b.WriteString(e.Action)
	}
	if e.Reason != "" {
		if e.Action != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		if e.Action != "" || e.Reason != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// usageError builds a CommandError that exits with ExitUsageError.
func usageError(command, reason string) error {
	return &CommandError{Command: command, Reason: reason, Code: ExitUsageError}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code != 0 {
		return cmdErr.Code
	}
	var verrs config.ValidateErrors
	if errors.As(err, &verrs) {
		return ExitConfigError
	}
	if isFlagError(err) {
		return ExitUsageError
	}
	if errors.Is(err, errInterrupted) {
		return ExitInterrupted
	}
	return ExitGeneralError
}

var errInterrupted = errors.New("interrupted")

// isFlagError recognises cobra's argument and flag parsing failures, which
// are plain errors.
func isFlagError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "invalid argument", "flag needs an argument", "accepts ", "requires "} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// FormatError renders an error for stderr.
func FormatError(err error) string {
	return fmt.Sprintf("%s %s", ErrorStyle.Render("Error:"), err.Error())
}
