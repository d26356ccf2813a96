// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea model of the chat screen.
package chat

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/commands"
	"github.com/jeranaias/tracechat-tui/internal/config"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/trace"
	"github.com/jeranaias/tracechat-tui/internal/ui/components"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus is the area receiving navigation keys.
type Focus int

const (
	FocusComposer Focus = iota
	FocusSidebar
	FocusThread
)

// focusRing is the tab order.
var focusRing = []Focus{FocusSidebar, FocusThread, FocusComposer}

// String returns the focus name.
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "sidebar"
	case FocusThread:
		return "thread"
	default:
		return "composer"
	}
}

func (f Focus) step(delta int) Focus {
	idx := 0
	for i, r := range focusRing {
		if r == f {
			idx = i
		}
	}
	n := len(focusRing)
	return focusRing[((idx+delta)%n+n)%n]
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Options configure a chat model.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Theme   *styles.Theme
	Reloads <-chan ConfigReloadedMsg

	// Context is the parent of every responder call. Cancelling it stops a
	// pending reply.
	Context context.Context

	// Clipboard writes the copied reply. Defaults to the system clipboard.
	Clipboard func(string) error

	// ExportDir receives session exports. Defaults to the working directory.
	ExportDir string
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	svc    *conversation.Service
	cfg    *config.Config
	logger *zap.Logger
	theme  *styles.Theme
	keys   KeyMap

	// Dimensions
	width  int
	height int

	focus Focus

	// Sidebar
	sidebarCursor    int
	sidebarCollapsed bool

	// Thread
	viewport   viewport.Model
	expansions *trace.Expansions
	cursor     *trace.Cursor
	lastCount  int    // messages shown at the last refresh
	lastActive string // session shown at the last refresh

	// Composer
	editor       textarea.Model
	attach       textinput.Model
	attaching    bool
	selectedFile int // -1 targets the last file

	// Pending reply
	pending   *conversation.Pending
	cancelMgr *cancelManager
	ctx       context.Context

	// Animation
	spinner  components.Spinner
	spinning bool

	// Status
	notice      string
	noticeError bool

	// Slash commands
	commands *commands.Registry
	parser   *commands.Parser

	reloads   <-chan ConfigReloadedMsg
	clipboard func(string) error
	exportDir string
}

// New creates a chat model over a conversation service.
func New(svc *conversation.Service, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ParseMode(cfg.UI.Theme))
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	keys := DefaultKeyMap()

	editor := textarea.New()
	editor.Placeholder = components.ComposerPlaceholder
	editor.ShowLineNumbers = false
	editor.Prompt = "> "
	editor.CharLimit = 0
	editor.SetHeight(3)
	editor.KeyMap.InsertNewline = keys.Newline
	editor.Focus()

	attach := textinput.New()
	attach.Placeholder = "path/to/file"
	attach.Prompt = ""
	attach.CharLimit = 1024

	m := Model{
		svc:              svc,
		cfg:              cfg,
		logger:           logger,
		theme:            theme,
		keys:             keys,
		width:            100,
		height:           30,
		focus:            FocusComposer,
		sidebarCollapsed: cfg.UI.SidebarCollapsed,
		viewport:         viewport.New(60, 10),
		expansions:       trace.NewExpansions(),
		cursor:           &trace.Cursor{},
		editor:           editor,
		attach:           attach,
		selectedFile:     -1,
		cancelMgr:        newCancelManager(),
		ctx:              ctx,
		spinner:          components.NewSpinner(styles.LineSpinner),
		reloads:          opts.Reloads,
		clipboard:        clip,
		exportDir:        exportDir,
	}
	m.commands = commands.NewRegistry()
	m.parser = commands.NewParser(m.commands)
	m.applyTheme()
	m.refresh()
	return m
}

// Init starts the cursor blink, the spinner if a step is running, and the
// config reload listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, listenConfig(m.reloads)}
	if m.needsSpinner() {
		cmds = append(cmds, m.spinner.Tick())
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Focus returns the focused area.
func (m Model) Focus() Focus { return m.focus }

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme { return m.theme }

// Notice returns the status bar notice.
func (m Model) Notice() string { return m.notice }

// Service returns the conversation service.
func (m Model) Service() *conversation.Service { return m.svc }

// Attaching reports whether the attach prompt is open.
func (m Model) Attaching() bool { return m.attaching }

// SidebarCollapsed reports whether the sidebar is a rail.
func (m Model) SidebarCollapsed() bool { return m.sidebarCollapsed }

// =============================================================================
// STATE SYNC
// =============================================================================

// applyTheme restyles the bubbles widgets after a theme change.
func (m *Model) applyTheme() {
	t := m.theme
	focused := textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		Placeholder: t.InputPlaceholder,
		Prompt:      t.InputPrompt,
		Text:        t.MessageText,
		EndOfBuffer: t.Muted,
	}
	blurred := focused
	blurred.Prompt = t.Muted
	m.editor.FocusedStyle = focused
	m.editor.BlurredStyle = blurred

	m.attach.TextStyle = t.MessageText
	m.attach.PlaceholderStyle = t.InputPlaceholder
}

// sidebarWidth returns the columns taken by the sidebar.
func (m Model) sidebarWidth() int {
	if m.sidebarCollapsed {
		return components.SidebarCollapsedWidth
	}
	return components.SidebarWidth
}

// mainWidth returns the columns right of the sidebar.
func (m Model) mainWidth() int {
	w := m.width - m.sidebarWidth()
	if w < 30 {
		w = 30
	}
	return w
}

// refresh re-reads the active session and rebuilds the viewport content.
// The viewport jumps to the bottom when messages were added or the session
// changed.
func (m *Model) refresh() {
	msgs := m.svc.Messages()
	active := m.svc.ActiveID()

	sessionChanged := active != m.lastActive
	if sessionChanged {
		m.expansions.Reset()
	}
	m.cursor.Sync(trace.Refs(msgs))
	grew := len(msgs) != m.lastCount || sessionChanged
	m.lastCount = len(msgs)
	m.lastActive = active

	if n := m.svc.Store().Len() + 1; m.sidebarCursor >= n {
		m.sidebarCursor = n - 1
	}
	if files := m.svc.Composer().FileCount(); m.selectedFile >= files {
		m.selectedFile = -1
	}

	m.layout()

	content, focusLine := m.threadView().Render(m.theme)
	m.viewport.SetContent(content)
	switch {
	case grew:
		m.viewport.GotoBottom()
	case focusLine >= 0:
		m.scrollTo(focusLine)
	}
}

// layout sizes the editor and viewport from the window and composer height.
func (m *Model) layout() {
	main := m.mainWidth()
	m.editor.SetWidth(main - 8)
	m.attach.Width = main - 16

	header := lipgloss.Height(m.headerView())
	composer := lipgloss.Height(m.composerView())
	status := 1

	m.viewport.Width = main
	h := m.height - header - composer - status
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
}

func (m *Model) scrollTo(line int) {
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// threadView assembles the thread component from current state.
func (m Model) threadView() components.Thread {
	th := components.Thread{
		Messages:       m.svc.Messages(),
		Expansions:     m.expansions,
		Frame:          m.spinner.Frame(),
		Width:          m.mainWidth() - 2,
		ShowTimestamps: m.cfg.UI.ShowTimestamps,
		Markdown:       m.cfg.UI.Markdown,
	}
	if m.focus == FocusThread {
		th.Cursor = m.cursor
	}
	if m.pending != nil && m.pending.SessionID == m.svc.ActiveID() {
		th.Thinking = &components.ThinkingIndicator{
			Frame:   m.spinner.Frame(),
			Started: m.pending.Started,
		}
	}
	return th
}

// needsSpinner reports whether anything on screen animates.
func (m Model) needsSpinner() bool {
	if m.pending != nil {
		return true
	}
	for _, msg := range m.svc.Messages() {
		for _, s := range msg.Steps {
			if s.Status == model.StatusRunning {
				return true
			}
		}
	}
	return false
}

// startSpinner returns the first tick if the spinner is idle.
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.needsSpinner() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick()
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeError = isErr
}

// matches is key.Matches with a shorter name.
func matches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
