// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

type rendererKey struct {
	mode  styles.Mode
	width int
}

var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

// markdownRenderer returns a cached glamour renderer for a mode and width.
func markdownRenderer(mode styles.Mode, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{mode: mode, width: width}

	renderersMu.Lock()
	defer renderersMu.Unlock()

	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(mode.String()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// RenderMarkdown renders assistant content as terminal markdown. Rendering
// failures, including panics inside glamour, fall back to word-wrapped text.
func RenderMarkdown(content string, width int, mode styles.Mode) string {
	if width < 20 {
		width = 20
	}
	fallback := wordWrap(content, width)

	r, err := markdownRenderer(mode, width)
	if err != nil {
		return fallback
	}
	rendered, err := safeRender(r, content)
	if err != nil {
		return fallback
	}
	return strings.Trim(rendered, "\n")
}

func safeRender(r *glamour.TermRenderer, content string) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("markdown render panic: %v", p)
		}
	}()
	return r.Render(content)
}
