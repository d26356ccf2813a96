// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a transcript to Markdown.
func (e *MarkdownExporter) Export(t Transcript) ([]byte, error) {
	if len(t.Messages) == 0 {
		return nil, ErrEmptyTranscript
	}

	var sb strings.Builder

	// YAML front matter
	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		fmt.Fprintf(&sb, "title: %s\n", escapeYAML(t.Title))
		if t.Session.ID != "" {
			fmt.Fprintf(&sb, "session: %s\n", escapeYAML(t.Session.ID))
		}
		if !t.Session.Date.IsZero() {
			fmt.Fprintf(&sb, "date: %s\n", t.Session.DateString())
		}
		fmt.Fprintf(&sb, "messages: %d\n", len(t.Messages))
		if !t.ExportedAt.IsZero() {
			fmt.Fprintf(&sb, "exported: %s\n", t.ExportedAt.Format(time.RFC3339))
		}
		fmt.Fprintf(&sb, "generator: %s\n", Generator)
		sb.WriteString("---\n\n")
	}

	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(t.Title))

	for i, msg := range t.Messages {
		label := msg.Role.DisplayName()
		if e.options.IncludeTimestamps {
			fmt.Fprintf(&sb, "### %s <sub>%s</sub>\n\n", label, formatShortTimestamp(msg.Timestamp))
		} else {
			fmt.Fprintf(&sb, "### %s\n\n", label)
		}

		if msg.HasFiles() {
			for _, f := range msg.Files {
				fmt.Fprintf(&sb, "- Attached %s (%s)\n", codeSpan(f.Name), f.MimeType)
			}
			sb.WriteString("\n")
		}

		if e.options.IncludeTrace && msg.HasTrace() {
			sb.WriteString(e.formatTrace(msg.Steps))
			sb.WriteString("\n")
		}

		if content := strings.TrimSpace(msg.Content); content != "" {
			sb.WriteString(content)
			sb.WriteString("\n\n")
		}

		if i < len(t.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// formatTrace renders steps as a bullet list. Details go in a fenced block
// under their step.
func (e *MarkdownExporter) formatTrace(steps []model.TraceStep) string {
	var sb strings.Builder
	sb.WriteString("**Chain of Thought**\n\n")
	for _, s := range steps {
		fmt.Fprintf(&sb, "- %s **%s**: %s\n", statusLabel(s.Status), s.Type, singleLine(s.Content))
		if !s.HasDetails() {
			continue
		}
		fence := codeFence(s.Details)
		sb.WriteString("\n  " + fence + "text\n")
		for _, line := range strings.Split(strings.TrimRight(s.Details, "\n"), "\n") {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("  " + fence + "\n\n")
	}
	return sb.String()
}

// codeFence returns a backtick fence longer than any run inside s.
func codeFence(s string) string {
	longest := longestBacktickRun(s)
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}

// codeSpan wraps s in an inline code span whose delimiter is longer than any
// backtick run inside it.
func codeSpan(s string) string {
	longest := longestBacktickRun(s)
	if longest == 0 {
		return "`" + s + "`"
	}
	delim := strings.Repeat("`", longest+1)
	return delim + " " + s + " " + delim
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// =============================================================================
// ESCAPING HELPERS
// =============================================================================

// escapeMarkdown escapes special Markdown characters in plain text.
func escapeMarkdown(s string) string {
	// Only escape characters that would break formatting in titles/headings
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}

// escapeYAML quotes a value when it contains YAML special characters.
func escapeYAML(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, ":#|>@`\"'[]{}!%&*\n\r\\") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
		s = strings.ReplaceAll(s, "\n", "\\n")
		s = strings.ReplaceAll(s, "\r", "\\r")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}
