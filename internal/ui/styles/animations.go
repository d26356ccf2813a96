// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the frames and speed of a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the time between frames.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner marks running trace steps.
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner follows the "thinking" label while a reply is pending.
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// Frame returns the frame for a tick counter, wrapping around.
func (s SpinnerConfig) Frame(tick int) string {
	if len(s.Frames) == 0 {
		return ""
	}
	if tick < 0 {
		tick = -tick
	}
	return s.Frames[tick%len(s.Frames)]
}
