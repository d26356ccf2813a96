// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestIsCommand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"/help", true},
		{"/theme dark", true},
		{"  /help", true},
		{"hello", false},
		{"hello /help", false},
		{"", false},
		{"/", true},
	}

	for _, tc := range tests {
		got := IsCommand(tc.input)
		if got != tc.want {
			t.Errorf("IsCommand(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestPartialCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/", "/"},
		{"/th", "/th"},
		{"/theme ", ""},
		{"/theme dark", ""},
		{"hello", ""},
	}
	for _, tc := range tests {
		if got := PartialCommand(tc.input); got != tc.want {
			t.Errorf("PartialCommand(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	p := NewParser(NewRegistry())

	tests := []struct {
		name      string
		input     string
		isCommand bool
		found     bool
		cmdName   string
		args      []string
		rawArgs   string
	}{
		{"plain text", "hello", false, false, "", nil, ""},
		{"known", "/help", true, true, "/help", nil, ""},
		{"alias", "/?", true, true, "/?", nil, ""},
		{"case insensitive", "/THEME Dark", true, true, "/THEME", []string{"Dark"}, "Dark"},
		{"unknown", "/usr/bin is slow", true, false, "/usr/bin", []string{"is", "slow"}, "is slow"},
		{"quoted", `/open "Performance Bottleneck"`, true, true, "/open", []string{"Performance Bottleneck"}, `"Performance Bottleneck"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.Equal(t, tt.isCommand, res.IsCommand)
			assert.Equal(t, tt.found, res.Command != nil)
			assert.Equal(t, tt.cmdName, res.CommandName)
			assert.Equal(t, tt.args, res.Args)
			assert.Equal(t, tt.rawArgs, res.RawArgs)
		})
	}
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"/a b c", []string{"/a", "b", "c"}},
		{`/a "b c"`, []string{"/a", "b c"}},
		{`/a 'b "c"'`, []string{"/a", `b "c"`}},
		{`/a "b \"c\""`, []string{"/a", `b "c"`}},
		{"/a   b", []string{"/a", "b"}},
		{"/a café", []string{"/a", "café"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, splitCommandLine(tc.input), tc.input)
	}
}

func TestValidateArgs(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		cmd     string
		args    []string
		wantErr bool
	}{
		{"/theme", nil, false},
		{"/theme", []string{"LIGHT"}, false},
		{"/theme", []string{"neon"}, true},
		{"/theme", []string{"dark", "extra"}, true},
		{"/open", nil, true},
		{"/open", []string{"1"}, false},
		{"/open", []string{"Deep", "Learning"}, false},
		{"/new", []string{"extra"}, true},
		{"/export", []string{"json"}, false},
		{"/export", []string{"html"}, true},
	}
	for _, tc := range tests {
		err := ValidateArgs(r.Get(tc.cmd), tc.args)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateArgs(%s, %v) error = %v, wantErr %v", tc.cmd, tc.args, err, tc.wantErr)
		}
		if err != nil {
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Command: "/theme", Arg: "mode", Message: "invalid value", Got: "neon", Expected: "light, dark"}
	assert.Equal(t, "/theme: invalid value for argument 'mode' (got: neon) - expected: light, dark", err.Error())
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistry_GetAndAliases(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.Get("/help"))
	assert.Same(t, r.Get("/help"), r.Get("/h"))
	assert.Same(t, r.Get("/quit"), r.Get("/exit"))
	assert.Nil(t, r.Get("/model"))
}

func TestRegistry_Complete(t *testing.T) {
	r := NewRegistry()

	names := func(cmds []*Command) []string {
		out := make([]string, 0, len(cmds))
		for _, c := range cmds {
			out = append(out, c.Name)
		}
		return out
	}
	assert.Equal(t, []string{"/clear", "/copy"}, names(r.Complete("/c")))
	assert.Equal(t, []string{"/theme"}, names(r.Complete("/TH")))
	assert.Empty(t, r.Complete("/zzz"))
	assert.Empty(t, r.Complete("help"))
	assert.Len(t, r.Complete("/"), len(r.All()))
}

func TestRegistry_ByCategory(t *testing.T) {
	cats := NewRegistry().ByCategory()
	assert.Len(t, cats["Navigation"], 3)
	assert.Len(t, cats["Conversation"], 4)
	assert.Len(t, cats["Settings"], 2)
}

func TestSummary(t *testing.T) {
	assert.Equal(t,
		"Commands: /clear /copy /export /help /new /open /quit /sidebar /theme",
		NewRegistry().Summary())
}

// =============================================================================
// HANDLER TESTS
// =============================================================================

func run(t *testing.T, r *Registry, ctx *Context, input string) interface{} {
	t.Helper()
	res := NewParser(r).Parse(input)
	require.NotNil(t, res.Command, input)
	require.NoError(t, ValidateArgs(res.Command, res.Args))
	cmd := res.Command.Handler(ctx, res.Args)
	require.NotNil(t, cmd)
	return cmd()
}

func TestHandlers(t *testing.T) {
	r := NewRegistry()
	ctx := &Context{}

	tests := []struct {
		input string
		want  interface{}
	}{
		{"/help", ShowHelpMsg{Text: r.Summary()}},
		{"/q", QuitMsg{}},
		{"/new", NewChatMsg{}},
		{"/clear", ClearConversationMsg{}},
		{"/copy", CopyToClipboardMsg{}},
		{"/export", ExportConversationMsg{Format: "markdown"}},
		{"/export JSON", ExportConversationMsg{Format: "json"}},
		{"/theme", ThemeMsg{}},
		{"/theme Light", ThemeMsg{Mode: "light"}},
		{"/sidebar", ToggleSidebarMsg{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, run(t, r, ctx, tt.input), tt.input)
	}
}

func TestHandleClear_Busy(t *testing.T) {
	msg := run(t, NewRegistry(), &Context{Busy: true}, "/clear")
	assert.IsType(t, ErrorMsg{}, msg)
}

func TestHandleOpen(t *testing.T) {
	r := NewRegistry()
	ctx := &Context{Sessions: []model.Session{
		{ID: "1", Title: "Deep Learning Model Analysis"},
		{ID: "2", Title: "Performance Bottleneck Fix"},
		{ID: "3", Title: "Performance Review"},
	}}

	assert.Equal(t, OpenSessionMsg{ID: "2"}, run(t, r, ctx, "/open 2"))
	assert.Equal(t, OpenSessionMsg{ID: "1"}, run(t, r, ctx, "/open deep"))
	assert.Equal(t, OpenSessionMsg{ID: "3"}, run(t, r, ctx, `/open "performance r"`))
	assert.Equal(t, OpenSessionMsg{ID: "2"}, run(t, r, ctx, "/open Performance Bottleneck"))

	msg := run(t, r, ctx, "/open performance")
	require.IsType(t, ErrorMsg{}, msg)
	assert.Contains(t, msg.(ErrorMsg).Text, "2 sessions match")

	msg = run(t, r, ctx, "/open nothing")
	require.IsType(t, ErrorMsg{}, msg)
	assert.Contains(t, msg.(ErrorMsg).Text, "no session matches")
}
