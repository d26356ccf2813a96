// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/trace"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// TRACE VIEW TESTS
// =============================================================================

func sampleSteps() []model.TraceStep {
	return []model.TraceStep{
		{ID: "s1", Type: model.StepThought, Content: "Reading the dump", Status: model.StatusCompleted},
		{ID: "s2", Type: model.StepCommand, Content: "Run analyzer", Status: model.StatusCompleted, Details: "heap-inspect --top 5"},
		{ID: "s3", Type: model.StepPlan, Content: "Draft the fix", Status: model.StatusRunning},
	}
}

func TestStepIcon_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, st := range model.StepTypes {
		icon := StepIcon(st)
		if seen[icon] {
			t.Errorf("StepIcon(%s) = %q, already used", st, icon)
		}
		seen[icon] = true
	}
}

func TestTraceView_DetailsOnlyWhenExpanded(t *testing.T) {
	theme := testTheme()
	exp := trace.NewExpansions()
	v := TraceView{MessageID: "m1", Steps: sampleSteps(), Expansions: exp, Width: 80}

	out, _ := v.Render(theme)
	got := plain(out)
	assert.Contains(t, got, TraceTitle)
	assert.Contains(t, got, "Run analyzer")
	assert.NotContains(t, got, "heap-inspect")

	exp.Toggle("m1", "s2")
	out, _ = v.Render(theme)
	assert.Contains(t, plain(out), "heap-inspect")
}

func TestTraceView_OtherMessageUnaffected(t *testing.T) {
	exp := trace.NewExpansions()
	exp.Toggle("m2", "s2")
	v := TraceView{MessageID: "m1", Steps: sampleSteps(), Expansions: exp, Width: 80}

	out, _ := v.Render(testTheme())
	assert.NotContains(t, plain(out), "heap-inspect")
}

func TestTraceView_RunningShowsFrame(t *testing.T) {
	v := TraceView{MessageID: "m1", Steps: sampleSteps(), Frame: "/", Width: 80}
	out, _ := v.Render(testTheme())
	assert.Contains(t, plain(out), "[/]")
	assert.Contains(t, plain(out), styles.StatusIndicators.Completed)
}

func TestTraceView_FocusLine(t *testing.T) {
	msgs := []model.Message{{ID: "m1", Role: model.RoleAssistant, Steps: sampleSteps()}}
	var cur trace.Cursor
	cur.Sync(trace.Refs(msgs))

	v := TraceView{MessageID: "m1", Steps: sampleSteps(), Cursor: &cur, Width: 80}
	_, line := v.Render(testTheme())
	assert.Equal(t, 1, line)

	cur.Next()
	_, line = v.Render(testTheme())
	assert.Equal(t, 2, line)

	v.Cursor = nil
	_, line = v.Render(testTheme())
	assert.Equal(t, -1, line)
}

func TestTraceView_Empty(t *testing.T) {
	out, line := TraceView{}.Render(testTheme())
	assert.Empty(t, out)
	assert.Equal(t, -1, line)
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestFileIcon(t *testing.T) {
	tests := []struct {
		file model.Attachment
		want string
	}{
		{model.Attachment{Name: "a.png", MimeType: "image/png"}, "[img]"},
		{model.Attachment{Name: "a.ts", MimeType: "text/x-typescript"}, "[</>]"},
		{model.Attachment{Name: "a.js", MimeType: "text/javascript"}, "[</>]"},
		{model.Attachment{Name: "a.pdf", MimeType: "application/pdf"}, "[doc]"},
	}

	for _, tc := range tests {
		if got := FileIcon(kindOfAttachment(tc.file)); got != tc.want {
			t.Errorf("FileIcon(%s) = %q, want %q", tc.file.Name, got, tc.want)
		}
	}
}

func TestMessageBubble_User(t *testing.T) {
	msg := model.Message{
		ID:        "u1",
		Role:      model.RoleUser,
		Content:   "Why is memory growing?",
		Timestamp: time.Date(2024, 5, 1, 14, 30, 0, 0, time.Local),
		Files:     []model.Attachment{{Name: "heap.png", MimeType: "image/png"}},
	}
	b := NewMessageBubble(msg, testTheme())
	got := plain(b.View())

	assert.Contains(t, got, "Why is memory growing?")
	assert.Contains(t, got, "[img] heap.png")
	assert.Contains(t, got, "14:30")
	assert.Contains(t, got, "You")
}

func TestMessageBubble_AssistantTraceAboveText(t *testing.T) {
	msg := model.Message{ID: "a1", Role: model.RoleAssistant, Content: "Found the leak.", Steps: sampleSteps()}
	b := NewMessageBubble(msg, testTheme())
	b.ShowTimestamp = false
	got := plain(b.View())

	traceAt := strings.Index(got, TraceTitle)
	textAt := strings.Index(got, "Found the leak.")
	require.GreaterOrEqual(t, traceAt, 0)
	require.GreaterOrEqual(t, textAt, 0)
	assert.Less(t, traceAt, textAt)
}

func TestMessageBubble_NoTraceNoHeader(t *testing.T) {
	msg := model.Message{ID: "a1", Role: model.RoleAssistant, Content: "Hi"}
	got := plain(NewMessageBubble(msg, testTheme()).View())
	assert.NotContains(t, got, TraceTitle)
}

func TestThread_FocusLineOffset(t *testing.T) {
	msgs := []model.Message{
		{ID: "u1", Role: model.RoleUser, Content: "hello"},
		{ID: "a1", Role: model.RoleAssistant, Content: "hi", Steps: sampleSteps()},
	}
	var cur trace.Cursor
	cur.Sync(trace.Refs(msgs))

	out, line := Thread{Messages: msgs, Cursor: &cur, Width: 80}.Render(testTheme())
	require.Greater(t, line, 0)
	lines := strings.Split(plain(out), "\n")
	require.Less(t, line, len(lines))
	assert.Contains(t, lines[line], "Reading the dump")
}

func TestThread_Thinking(t *testing.T) {
	out, _ := Thread{Thinking: &ThinkingIndicator{Frame: ".."}, Width: 80}.Render(testTheme())
	assert.Contains(t, plain(out), "Agent is thinking")
}

// =============================================================================
// CHROME TESTS
// =============================================================================

func TestSidebar_View(t *testing.T) {
	sb := NewSidebar(testTheme())
	sb.Sessions = []model.Session{
		{ID: "1", Title: "Memory Leak Analysis", Date: model.MustDate("2024-05-01")},
		{ID: "2", Title: "Refactor Plan"},
	}
	sb.ActiveID = "1"
	sb.Height = 20

	got := plain(sb.View())
	assert.Contains(t, got, "New Chat")
	assert.Contains(t, got, "Memory Leak Analysis")
	assert.Contains(t, got, "2024-05-01")
	assert.Equal(t, 3, sb.Entries())

	sb.Collapsed = true
	got = plain(sb.View())
	assert.NotContains(t, got, "Memory Leak Analysis")
	assert.Equal(t, SidebarCollapsedWidth, sb.Width())
}

func TestSidebar_ScrollsToCursor(t *testing.T) {
	sb := NewSidebar(testTheme())
	for i := 1; i <= 30; i++ {
		sb.Sessions = append(sb.Sessions, model.Session{
			ID:    fmt.Sprint(i),
			Title: fmt.Sprintf("Session %02d", i),
			Date:  model.MustDate("2025-12-01"),
		})
	}
	sb.Height = 30
	sb.Focused = true

	sb.Cursor = 1
	got := plain(sb.View())
	assert.Regexp(t, `>\s+Session 01`, got)
	assert.NotContains(t, got, "Session 30")
	assert.Contains(t, got, "ctrl+b collapse")

	sb.Cursor = 26
	got = plain(sb.View())
	assert.Regexp(t, `>\s+Session 26`, got)
	assert.NotContains(t, got, "Session 01")
	assert.Contains(t, got, "New Chat")
	assert.Contains(t, got, "ctrl+b collapse")
	assert.Len(t, strings.Split(got, "\n"), 30)

	sb.Cursor = 30
	assert.Regexp(t, `>\s+Session 30`, plain(sb.View()))
}

func TestHeader_View(t *testing.T) {
	h := NewHeader(testTheme())
	h.Title = "Memory Leak Analysis"
	got := plain(h.View())
	assert.Contains(t, got, "Session: Memory Leak Analysis")
	assert.Contains(t, got, "Agent Online")
	assert.Contains(t, got, "[dark]")
}

func TestWelcome_View(t *testing.T) {
	w := NewWelcome(testTheme())
	w.SetSize(100, 30)
	got := plain(w.View())
	assert.Contains(t, got, "Empowering Your Creativity")
	for _, c := range FeatureCards {
		assert.Contains(t, got, c.Title)
		assert.Contains(t, got, c.Desc)
	}
}

func TestComposerView(t *testing.T) {
	v := ComposerView{
		Files: []composer.FileHandle{
			composer.NewFile("notes.pdf", "application/pdf"),
			composer.NewFile("main.py", "text/x-python"),
		},
		SelectedFile: -1,
		Editor:       "draft",
		CanSubmit:    true,
		Width:        80,
	}
	got := plain(v.View(testTheme()))
	assert.Contains(t, got, "1 [doc] notes.pdf")
	assert.Contains(t, got, "2 [</>] main.py")
	assert.Contains(t, got, "Advanced Intelligence")
	assert.Contains(t, got, "Secure Sandbox")
	assert.Contains(t, got, "enter send")

	v.Busy = true
	assert.Contains(t, plain(v.View(testTheme())), "working...")
}

func TestStatusBar_View(t *testing.T) {
	sb := NewStatusBar(testTheme())
	sb.Width = 120
	sb.Notice = "not a file"
	sb.IsError = true
	sb.Shortcuts = []Shortcut{{Key: "ctrl+n", Desc: "new chat"}}

	got := plain(sb.View())
	assert.Contains(t, got, "Ready")
	assert.Contains(t, got, "not a file")
	assert.Contains(t, got, "ctrl+n new chat")
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestPlainTranscript(t *testing.T) {
	msgs := []model.Message{
		{ID: "u1", Role: model.RoleUser, Content: "ping", Files: []model.Attachment{{Name: "a.png", MimeType: "image/png"}}},
		{ID: "a1", Role: model.RoleAssistant, Content: "pong", Steps: sampleSteps()},
	}
	got := PlainTranscript(msgs)

	assert.Contains(t, got, "You [")
	assert.Contains(t, got, "[img] a.png (image/png)")
	assert.Contains(t, got, "[OK] Thought: Reading the dump")
	assert.Contains(t, got, "[..] Plan: Draft the fix")
	assert.Contains(t, got, "      heap-inspect --top 5")
	assert.Equal(t, got, plain(got))
}

func TestStyledTranscript_ExpandsDetails(t *testing.T) {
	msgs := []model.Message{{ID: "a1", Role: model.RoleAssistant, Content: "pong", Steps: sampleSteps()}}
	got := plain(StyledTranscript(msgs, testTheme(), 80, false))
	assert.Contains(t, got, "heap-inspect")
}

func TestHighlight_KeepsText(t *testing.T) {
	for _, mode := range []styles.Mode{styles.ModeDark, styles.ModeLight} {
		got := strings.TrimSpace(plain(HighlightShell("ls -la /tmp", mode)))
		assert.Equal(t, "ls -la /tmp", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := plain(RenderMarkdown("# Title\n\nhello **world**", 60, styles.ModeDark))
	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "world")
	assert.NotContains(t, got, "**")
}
