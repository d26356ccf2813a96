// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the Bubble Tea model of the chat screen.

The model owns no domain state. Sessions, logs, the composer and the busy gate
live in a *conversation.Service; the model keeps only what is about the
screen: focus, sidebar cursor, trace expansion and cursor, the bubbles
widgets and the pending reply.

# Key Components

## Model (model.go)

Model holds the screen state and rebuilds the thread after every change
(refresh). The viewport follows new messages and the focused trace step.

## Update Loop (update.go)

Keys are handled globally first (quit, new chat, theme, sidebar, attach,
copy, focus ring) and then by the focused area. Submitting runs the responder
in a tea.Cmd; its reply comes back as a ResponseMsg and is appended to the
session it was sent from.

## View Rendering (view.go)

Sidebar on the left; header, thread (or the welcome screen), composer and
status bar on the right.

## Messages (messages.go)

ResponseMsg, ResponseErrMsg, ConfigReloadedMsg and NoticeMsg.

# Usage

	svc := conversation.NewService(store, responder.NewMock(cfg.Responder.Delay.Std()), logger)
	m := chat.New(svc, chat.Options{Config: cfg, Logger: logger, Reloads: reloads})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
*/
package chat
