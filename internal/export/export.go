// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/session"
	"github.com/jeranaias/tracechat-tui/internal/util"
)

// Generator names the program in exported documents.
const Generator = "tracechat"

var (
	// ErrEmptyTranscript is returned when there are no messages to export.
	ErrEmptyTranscript = errors.New("transcript has no messages")

	// ErrUnknownFormat is returned by ForFormat for unsupported names.
	ErrUnknownFormat = errors.New("unknown export format")
)

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is a snapshot of one session prepared for export.
type Transcript struct {
	Session    model.Session   `json:"session"`
	Title      string          `json:"title"`
	Messages   []model.Message `json:"messages"`
	ExportedAt time.Time       `json:"exported_at"`
	Generator  string          `json:"generator"`
}

// FromStore snapshots the active session of store. When no session is
// active the title is the store's fallback label.
func FromStore(store *session.Store) Transcript {
	sess, _ := store.Active()
	return Transcript{
		Session:    sess,
		Title:      store.ActiveTitle(),
		Messages:   store.ActiveLog().Messages(),
		ExportedAt: time.Now(),
		Generator:  Generator,
	}
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts a transcript to a document format.
type Exporter interface {
	// Export converts a transcript to the target format and returns the content.
	Export(t Transcript) ([]byte, error)

	// FileExtension returns the file extension, e.g. ".md".
	FileExtension() string

	// MimeType returns the MIME type of the exported document.
	MimeType() string
}

// Options configures export behavior.
type Options struct {
	// OutputDir is where ExportToFile writes. Default: current directory.
	OutputDir string

	// IncludeMetadata adds a front matter block to Markdown output.
	IncludeMetadata bool

	// IncludeTimestamps adds per-message times.
	IncludeTimestamps bool

	// IncludeTrace adds each assistant message's reasoning steps.
	IncludeTrace bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:         ".",
		IncludeMetadata:   true,
		IncludeTimestamps: true,
		IncludeTrace:      true,
	}
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"markdown", "json"}

// ForFormat returns the exporter for a format name ("markdown", "md" or
// "json").
func ForFormat(name string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile exports a transcript into opts.OutputDir and returns the
// written path. The file name is built from the title and the export time.
func ExportToFile(t Transcript, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(t.Messages) == 0 {
		return "", ErrEmptyTranscript
	}

	content, err := exporter.Export(t)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	stamp := t.ExportedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	filename := fmt.Sprintf("tracechat_%s_%s%s",
		sanitizeFilename(t.Title),
		stamp.Format("20060102_150405"),
		exporter.FileExtension(),
	)

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	outputPath := filepath.Join(dir, filename)
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return outputPath, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename replaces characters that are invalid in file names on
// common platforms and limits the length.
func sanitizeFilename(s string) string {
	const maxLen = 50
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}

	result := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			result = append(result, '-')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			result = append(result, '_')
		case r < 32 || r == 127:
			result = append(result, '-')
		default:
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "session"
	}
	return string(result)
}

// statusLabel is the ASCII marker for a step status.
func statusLabel(s model.StepStatus) string {
	switch s {
	case model.StatusCompleted:
		return "[OK]"
	case model.StatusError:
		return "[X]"
	case model.StatusRunning:
		return "[..]"
	default:
		return "[ ]"
	}
}

// formatShortTimestamp formats a timestamp for inline display.
func formatShortTimestamp(t time.Time) string {
	return t.Format("15:04")
}
