// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightStyle returns the chroma style name for a mode.
func highlightStyle(mode styles.Mode) string {
	if mode == styles.ModeLight {
		return "github"
	}
	return "monokai"
}

// Highlight applies terminal syntax highlighting to code. An empty language
// lets chroma guess. On any failure the code is returned unchanged.
func Highlight(code, language string, mode styles.Mode) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(highlightStyle(mode))
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	// Lexers append a newline the caller did not write.
	tokens := iterator.Tokens()
	if n := len(tokens); n > 0 && !strings.HasSuffix(code, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
		return code
	}
	return buf.String()
}

// HighlightShell highlights the details of a command step.
func HighlightShell(code string, mode styles.Mode) string {
	return Highlight(code, "bash", mode)
}
