// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/trace"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// TRANSCRIPT
// =============================================================================

// PlainTranscript renders messages without escape sequences, for pipes and
// log files. Every step is printed with its details.
func PlainTranscript(msgs []model.Message) string {
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s [%s]\n", m.Role.DisplayName(), formatClock(m.Timestamp))
		for _, f := range m.Files {
			fmt.Fprintf(&b, "  %s %s (%s)\n", FileIcon(kindOfAttachment(f)), f.Name, f.MimeType)
		}
		if m.HasTrace() {
			fmt.Fprintf(&b, "  %s\n", TraceTitle)
			for _, s := range m.Steps {
				fmt.Fprintf(&b, "  %s %s: %s\n", plainStatus(s.Status), s.Type, s.Content)
				if s.HasDetails() {
					b.WriteString(indent(s.Details, 6))
					b.WriteString("\n")
				}
			}
		}
		if m.Content != "" {
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// StyledTranscript renders messages the way the chat screen does, with all
// steps expanded.
func StyledTranscript(msgs []model.Message, theme *styles.Theme, width int, markdown bool) string {
	exp := trace.NewExpansions()
	for _, m := range msgs {
		for _, s := range m.Steps {
			if s.HasDetails() {
				exp.Toggle(m.ID, s.ID)
			}
		}
	}
	out, _ := Thread{
		Messages:       msgs,
		Expansions:     exp,
		Width:          width,
		ShowTimestamps: true,
		Markdown:       markdown,
	}.Render(theme)
	return out
}

func plainStatus(s model.StepStatus) string {
	switch s {
	case model.StatusCompleted:
		return styles.StatusIndicators.Completed
	case model.StatusError:
		return styles.StatusIndicators.Error
	case model.StatusRunning:
		return "[..]"
	default:
		return styles.StatusIndicators.Pending
	}
}
