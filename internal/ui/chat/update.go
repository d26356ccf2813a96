// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/commands"
	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/export"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// generateCmd runs the responder off the update loop.
func generateCmd(ctx context.Context, svc *conversation.Service, p conversation.Pending) tea.Cmd {
	return func() tea.Msg {
		reply, err := svc.Generate(ctx, p)
		if err != nil {
			return ResponseErrMsg{Pending: p, Err: err}
		}
		return ResponseMsg{Reply: reply, Started: p.Started}
	}
}

// copyCmd writes text to the clipboard and reports the result.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return NoticeMsg{Text: "copy failed: " + err.Error(), IsError: true}
		}
		return NoticeMsg{Text: "Copied last reply"}
	}
}

// exportCmd writes a transcript into dir in the given format and reports
// the path.
func exportCmd(t export.Transcript, format, dir string) tea.Cmd {
	return func() tea.Msg {
		opts := export.DefaultOptions()
		opts.OutputDir = dir
		exporter, err := export.ForFormat(format, opts)
		if err != nil {
			return NoticeMsg{Text: "export failed: " + err.Error(), IsError: true}
		}
		path, err := export.ExportToFile(t, exporter, opts)
		if err != nil {
			return NoticeMsg{Text: "export failed: " + err.Error(), IsError: true}
		}
		return NoticeMsg{Text: "Exported to " + path}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ResponseMsg:
		return m.handleResponse(msg)

	case ResponseErrMsg:
		return m.handleResponseErr(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case NoticeMsg:
		m.setNotice(msg.Text, msg.IsError)
		return m, nil

	case commands.ShowHelpMsg:
		m.setNotice(msg.Text, false)
		return m, nil
	case commands.ErrorMsg:
		m.setNotice(msg.Text, true)
		return m, nil
	case commands.QuitMsg:
		m.cancelMgr.clear()
		return m, tea.Quit
	case commands.NewChatMsg:
		return m.newChat()
	case commands.OpenSessionMsg:
		m.svc.Select(msg.ID)
		m.sidebarCursor = m.svc.Store().IndexOf(msg.ID) + 1
		m.refresh()
		return m, m.startSpinner()
	case commands.ClearConversationMsg:
		return m.clearConversation()
	case commands.CopyToClipboardMsg:
		return m.copyReply()
	case commands.ExportConversationMsg:
		return m.exportSession(msg.Format)
	case commands.ThemeMsg:
		return m.setTheme(msg.Mode)
	case commands.ToggleSidebarMsg:
		m.sidebarCollapsed = !m.sidebarCollapsed
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.needsSpinner() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	return m.updateFocused(msg)
}

// updateFocused forwards other messages (cursor blink) to the focused input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.attaching {
		m.attach, cmd = m.attach.Update(msg)
	} else {
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	// Global keys
	switch {
	case matches(msg, k.Quit):
		m.cancelMgr.clear()
		return m, tea.Quit

	case m.attaching:
		return m.handleAttachKey(msg)

	case matches(msg, k.NewChat):
		return m.newChat()

	case matches(msg, k.Theme):
		return m.setTheme("")

	case matches(msg, k.Sidebar):
		m.sidebarCollapsed = !m.sidebarCollapsed
		m.refresh()
		return m, nil

	case matches(msg, k.Attach):
		m.attaching = true
		m.attach.SetValue("")
		m.editor.Blur()
		m.refresh()
		return m, m.attach.Focus()

	case matches(msg, k.CopyReply):
		return m.copyReply()

	case matches(msg, k.Export):
		return m.exportSession("markdown")

	case matches(msg, k.NextFocus):
		return m.setFocus(m.focus.step(1))

	case matches(msg, k.PrevFocus):
		return m.setFocus(m.focus.step(-1))
	}

	switch m.focus {
	case FocusSidebar:
		return m.handleSidebarKey(msg)
	case FocusThread:
		return m.handleThreadKey(msg)
	default:
		return m.handleComposerKey(msg)
	}
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	if f == FocusComposer {
		cmd = m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	m.refresh()
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.svc.Store().Len() + 1
	switch {
	case matches(msg, m.keys.Up):
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case matches(msg, m.keys.Down):
		if m.sidebarCursor < entries-1 {
			m.sidebarCursor++
		}
	case matches(msg, m.keys.Submit):
		if m.sidebarCursor == 0 {
			return m.newChat()
		}
		sessions := m.svc.Sessions()
		if i := m.sidebarCursor - 1; i < len(sessions) {
			m.svc.Select(sessions[i].ID)
		}
		m.refresh()
		return m.withSpinner(m.setFocus(FocusComposer))
	}
	return m, nil
}

func (m Model) handleThreadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.keys.Up):
		if m.cursor.Len() == 0 {
			m.viewport.LineUp(1)
			return m, nil
		}
		m.cursor.Prev()
	case matches(msg, m.keys.Down):
		if m.cursor.Len() == 0 {
			m.viewport.LineDown(1)
			return m, nil
		}
		m.cursor.Next()
	case matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	case matches(msg, m.keys.Submit):
		if ref, ok := m.cursor.Current(); ok {
			m.expansions.Toggle(ref.MessageID, ref.StepID)
		}
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.svc.Composer()
	switch {
	case matches(msg, m.keys.Submit):
		return m.submit()

	case matches(msg, m.keys.Detach):
		if c.FileCount() == 0 {
			return m, nil
		}
		idx := m.selectedFile
		if idx < 0 {
			idx = c.FileCount() - 1
		}
		c.RemoveFile(idx)
		m.selectedFile = -1
		m.refresh()
		return m, nil

	case matches(msg, m.keys.ChipPrev):
		if n := c.FileCount(); n > 0 {
			if m.selectedFile <= 0 {
				m.selectedFile = n - 1
			} else {
				m.selectedFile--
			}
			m.refresh()
		}
		return m, nil

	case matches(msg, m.keys.ChipNext):
		if n := c.FileCount(); n > 0 {
			m.selectedFile++
			if m.selectedFile >= n {
				m.selectedFile = 0
			}
			m.refresh()
		}
		return m, nil

	case matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	c.SetDraft(m.editor.Value())
	m.refresh()
	return m, cmd
}

func (m Model) handleAttachKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.keys.Cancel):
		return m.closeAttach()

	case matches(msg, m.keys.Submit):
		path := m.attach.Value()
		f, err := composer.FromPath(path)
		if err != nil {
			m.logger.Info("attach failed", zap.String("path", path), zap.Error(err))
			m.setNotice(fmt.Sprintf("cannot attach: %v", err), true)
			return m.closeAttach()
		}
		m.svc.Composer().AddFiles(f)
		m.logger.Debug("file attached", zap.String("name", f.Name()), zap.String("mime_type", f.MimeType()))
		m.setNotice("Attached "+f.Name(), false)
		return m.closeAttach()
	}

	var cmd tea.Cmd
	m.attach, cmd = m.attach.Update(msg)
	return m, cmd
}

func (m Model) closeAttach() (tea.Model, tea.Cmd) {
	m.attaching = false
	m.attach.Blur()
	m.attach.SetValue("")
	m.focus = FocusComposer
	m.refresh()
	return m, m.editor.Focus()
}

// =============================================================================
// ACTIONS
// =============================================================================

func (m Model) newChat() (tea.Model, tea.Cmd) {
	m.svc.NewChat()
	m.sidebarCursor = 1
	m.refresh()
	return m.withSpinner(m.setFocus(FocusComposer))
}

// withSpinner restarts the tick when the newly displayed session has
// running steps.
func (Model) withSpinner(next tea.Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m := next.(Model)
	return m, tea.Batch(cmd, m.startSpinner())
}

func (m Model) setTheme(mode string) (tea.Model, tea.Cmd) {
	switch mode {
	case "":
		m.theme.Toggle()
	default:
		m.theme.SetMode(styles.ParseMode(mode))
	}
	m.applyTheme()
	m.logger.Debug("theme changed", zap.String("mode", m.theme.Mode.String()))
	m.refresh()
	return m, nil
}

func (m Model) copyReply() (tea.Model, tea.Cmd) {
	reply, ok := m.svc.LastReply()
	if !ok {
		m.setNotice("Nothing to copy yet", false)
		return m, nil
	}
	return m, copyCmd(m.clipboard, reply.Content)
}

func (m Model) exportSession(format string) (tea.Model, tea.Cmd) {
	t := export.FromStore(m.svc.Store())
	if len(t.Messages) == 0 {
		m.setNotice("Nothing to export yet", false)
		return m, nil
	}
	m.logger.Info("exporting session",
		zap.String("session_id", t.Session.ID),
		zap.String("format", format),
		zap.Int("messages", len(t.Messages)),
	)
	return m, exportCmd(t, format, m.exportDir)
}

// clearConversation empties the displayed session. It is refused while a
// reply is pending.
func (m Model) clearConversation() (tea.Model, tea.Cmd) {
	if m.svc.Busy() {
		m.setNotice("Wait for the reply before clearing", true)
		return m, nil
	}
	m.svc.ClearActive()
	m.expansions.Reset()
	m.logger.Info("session cleared", zap.String("session_id", m.svc.ActiveID()))
	m.setNotice("Chat cleared", false)
	m.refresh()
	return m, nil
}

// runCommand executes a slash command typed into the composer. The draft is
// consumed; attachments stay.
func (m Model) runCommand(res commands.ParseResult) (tea.Model, tea.Cmd) {
	if err := commands.ValidateArgs(res.Command, res.Args); err != nil {
		m.setNotice(err.Error(), true)
		return m, nil
	}
	ctx := &commands.Context{
		Sessions: m.svc.Sessions(),
		ActiveID: m.svc.ActiveID(),
		Busy:     m.svc.Busy(),
	}
	m.logger.Debug("command", zap.String("name", res.Command.Name), zap.Strings("args", res.Args))
	m.editor.Reset()
	m.svc.Composer().SetDraft("")
	m.setNotice("", false)
	m.refresh()
	return m, res.Command.Handler(ctx, res.Args)
}

// submit sends the composer content, or runs it when its first word is a
// registered command. Refused submits (busy or empty) are silent.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if res := m.parser.Parse(m.editor.Value()); res.Command != nil {
		return m.runCommand(res)
	}
	m.svc.Composer().SetDraft(m.editor.Value())
	p, ok := m.svc.Submit()
	if !ok {
		return m, nil
	}

	m.editor.Reset()
	m.selectedFile = -1
	m.pending = &p
	m.setNotice("", false)

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelMgr.set(cancel)

	m.refresh()
	return m, tea.Batch(generateCmd(ctx, m.svc, p), m.startSpinner())
}

func (m Model) handleResponse(msg ResponseMsg) (tea.Model, tea.Cmd) {
	m.svc.Deliver(msg.Reply, msg.Started)
	m.pending = nil
	m.cancelMgr.clear()
	m.refresh()
	return m, m.startSpinner()
}

func (m Model) handleResponseErr(msg ResponseErrMsg) (tea.Model, tea.Cmd) {
	m.svc.Fail(msg.Pending, msg.Err)
	m.pending = nil
	m.cancelMgr.clear()
	if !errors.Is(msg.Err, context.Canceled) {
		m.setNotice("agent error: "+msg.Err.Error(), true)
	}
	m.refresh()
	return m, nil
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	next := listenConfig(m.reloads)
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		m.setNotice("config reload failed: "+msg.Err.Error(), true)
		return m, next
	}
	if msg.Config == nil {
		return m, next
	}

	m.cfg = msg.Config
	if mode := styles.ParseMode(m.cfg.UI.Theme); mode != m.theme.Mode {
		m.theme.SetMode(mode)
		m.applyTheme()
	}
	m.logger.Info("config reloaded", zap.String("theme", m.cfg.UI.Theme))
	m.setNotice("Config reloaded", false)
	m.refresh()
	return m, next
}
