// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tracechat-tui/internal/config"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/responder"
)

// =============================================================================
// RESPONDER MESSAGES
// =============================================================================

// ResponseMsg carries a reply back to the update loop.
type ResponseMsg struct {
	Reply   responder.Reply
	Started time.Time
}

// ResponseErrMsg reports a responder failure for a pending turn.
type ResponseErrMsg struct {
	Pending conversation.Pending
	Err     error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent when the config file changed on disk. Err is set
// when the new file could not be loaded; the old settings stay in effect.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// listenConfig waits for the next reload notification.
func listenConfig(ch <-chan ConfigReloadedMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// NoticeMsg shows a one-line notice in the status bar.
type NoticeMsg struct {
	Text    string
	IsError bool
}
