// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual pieces of the chat screen.

Components are plain structs with a View or Render method. They hold no
application state of their own: the chat model fills in their fields from the
session store, the composer and the trace expansion registry before each
render, and passes the active *styles.Theme.

# Core Components

## Layout

Sidebar (sidebar.go) - Session list with a New Chat entry; collapses to a rail.
Header (header.go) - Active session title, theme mode and agent status.
StatusBar (statusbar.go) - Status, last notice and key hints.
Welcome (welcome.go) - Empty-session screen with the feature cards.

## Thread

Thread (thread.go) - The message log of the active session.
MessageBubble (message.go) - One message with its file chips and timestamp.
TraceView (trace_view.go) - The "Chain of Thought" rows of an agent message.
ThinkingIndicator (spinner.go) - Shown while a reply is pending.

## Input

ComposerView (composer_view.go) - Attachment chips, editor and send hint.

## Rendering

RenderMarkdown (markdown.go) - Glamour rendering of agent replies.
Highlight (highlight.go) - Chroma highlighting of command details.
PlainTranscript, StyledTranscript (transcript.go) - Output of the ask command.

# Key Types

Render methods that can carry keyboard focus return the focused line so the
caller can scroll its viewport:

	content, focus := components.Thread{
		Messages:   msgs,
		Expansions: expansions,
		Cursor:     &cursor,
		Width:      width,
	}.Render(theme)
	vp.SetContent(content)
	if focus >= 0 {
		vp.SetYOffset(focus)
	}
*/
package components
