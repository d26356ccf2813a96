// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package internal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/config"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/export"
	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/responder"
	"github.com/jeranaias/tracechat-tui/internal/session"
	"github.com/jeranaias/tracechat-tui/internal/ui/chat"
	"github.com/jeranaias/tracechat-tui/internal/ui/components"
)

// =============================================================================
// HELPERS
// =============================================================================

// newService builds the same object graph the CLI does, from a config.
func newService(t *testing.T, cfg *config.Config) (*conversation.Service, *session.Store) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := session.NewStore(session.Config{
		NewTitle:      cfg.Session.NewTitle,
		FallbackTitle: cfg.Session.FallbackTitle,
		Clock:         time.Now,
		Logger:        logger,
	})
	if cfg.Session.SeedDemo {
		session.SeedDemo(store)
	} else {
		store.Create()
	}
	mock := responder.NewMock(cfg.Responder.Delay.Std())
	mock.Content = cfg.Responder.Reply
	return conversation.NewService(store, mock, logger), store
}

// =============================================================================
// END TO END
// =============================================================================

// TestConfigToExport loads a YAML config, runs a headless exchange with an
// attachment, and exports the session.
func TestConfigToExport(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
responder:
  delay: 0s
  reply: "Looking at the attached chart."
session:
  new_title: "Scratch"
  seed_demo: false
`), 0600))

	cfg, err := config.LoadFromPath(cfgPath)
	require.NoError(t, err)
	svc, store := newService(t, cfg)
	assert.Equal(t, "Scratch", svc.ActiveTitle())

	chart := filepath.Join(dir, "chart.png")
	require.NoError(t, os.WriteFile(chart, []byte{0x89, 'P', 'N', 'G'}, 0600))
	f, err := composer.FromPath(chart)
	require.NoError(t, err)

	svc.Composer().SetDraft("what does this show?")
	svc.Composer().AddFiles(f)
	reply, ok, err := svc.Exchange(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Looking at the attached chart.", reply.Content)
	assert.NotEmpty(t, reply.Steps)

	msgs := svc.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, []model.Attachment{{Name: "chart.png", MimeType: "image/png"}}, msgs[0].Files)

	plain := components.PlainTranscript(msgs)
	assert.Contains(t, plain, "[img] chart.png (image/png)")
	assert.Contains(t, plain, components.TraceTitle)

	out := filepath.Join(dir, "exports")
	path, err := export.ExportToFile(export.FromStore(store), export.NewJSONExporter(nil), &export.Options{OutputDir: out, IncludeTrace: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "tracechat_Scratch_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc export.Transcript
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Scratch", doc.Title)
	require.Len(t, doc.Messages, 2)
	assert.Equal(t, len(reply.Steps), len(doc.Messages[1].Steps))
}

// TestChatModelDrivesService feeds key presses to the Bubble Tea model and
// checks the conversation state underneath.
func TestChatModelDrivesService(t *testing.T) {
	cfg := config.Default()
	cfg.Responder.Delay = 0
	cfg.UI.Markdown = false
	svc, store := newService(t, cfg)

	var m tea.Model = chat.New(svc, chat.Options{Config: cfg, Logger: zaptest.NewLogger(t)})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// New chat, type, send.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	newID := store.ActiveID()
	assert.NotEqual(t, "1", newID)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello agent")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, svc.Busy())

	// Run the batch until the reply arrives.
	for _, msg := range drain(cmd) {
		if _, ok := msg.(chat.ResponseMsg); ok {
			m, _ = m.Update(msg)
		}
	}
	assert.False(t, svc.Busy())

	log := store.Log(newID).Messages()
	require.Len(t, log, 2)
	assert.Equal(t, "hello agent", log[0].Content)
	assert.Equal(t, responder.DefaultReply, log[1].Content)

	// The seeded session is untouched.
	assert.Equal(t, 3, store.Log("1").Len())
	assert.Contains(t, m.View(), "hello agent")
}

// drain runs a command and any batch it returns, collecting the messages.
// Ticking commands (cursor blink, spinner) are skipped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		done := make(chan tea.Msg, 1)
		go func(c tea.Cmd) { done <- c() }(c)
		select {
		case m := <-done:
			out = append(out, m)
		case <-time.After(2 * time.Second):
		}
	}
	return out
}
