// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a slash command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "/help")
	Name string

	// Aliases are alternative names (e.g., "/h", "/?")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g., "/theme [light|dark]")
	Usage string

	// Args defines the expected arguments
	Args []ArgDef

	// Handler returns the command that carries out the request. The chat
	// model receives the resulting message.
	Handler func(ctx *Context, args []string) tea.Cmd

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	Name        string
	Required    bool
	Type        ArgType
	Description string

	// Values for enum types
	Values []string
}

// ArgType indicates what kind of value an argument takes.
type ArgType int

const (
	ArgTypeString  ArgType = iota // Free-form string
	ArgTypeEnum                   // One of predefined values
	ArgTypeSession                // Session id or title prefix
)

// Context is the application state a handler may read.
type Context struct {
	// Sessions in sidebar order
	Sessions []model.Session

	// ActiveID is the displayed session
	ActiveID string

	// Busy is true while a reply is pending
	Busy bool
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates a registry with the built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	r.commands[strings.ToLower(cmd.Name)] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[strings.ToLower(alias)] = cmd
	}
}

// Get retrieves a command by name or alias, ignoring case.
func (r *Registry) Get(name string) *Command {
	name = strings.ToLower(name)
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands sorted by name.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// ByCategory returns commands grouped by category.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.All() {
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// Complete returns the commands whose name starts with prefix, sorted.
// Aliases are not offered.
func (r *Registry) Complete(prefix string) []*Command {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if !strings.HasPrefix(prefix, "/") {
		return nil
	}
	var out []*Command
	for _, cmd := range r.All() {
		if strings.HasPrefix(cmd.Name, prefix) {
			out = append(out, cmd)
		}
	}
	return out
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	// Navigation
	r.Register(&Command{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "List the available commands",
		Category:    "Navigation",
		Handler:     r.handleHelp,
	})
	r.Register(&Command{
		Name:        "/quit",
		Aliases:     []string{"/q", "/exit"},
		Description: "Exit tracechat",
		Category:    "Navigation",
		Handler:     handleQuit,
	})
	r.Register(&Command{
		Name:        "/open",
		Aliases:     []string{"/o"},
		Description: "Switch to a session by id or title",
		Usage:       "/open <session>",
		Args: []ArgDef{
			{Name: "session", Required: true, Type: ArgTypeSession, Description: "session id or title prefix"},
		},
		Category: "Navigation",
		Handler:  handleOpen,
	})

	// Conversation
	r.Register(&Command{
		Name:        "/new",
		Aliases:     []string{"/n"},
		Description: "Start a new chat",
		Category:    "Conversation",
		Handler:     handleNew,
	})
	r.Register(&Command{
		Name:        "/clear",
		Description: "Remove every message from this chat",
		Category:    "Conversation",
		Handler:     handleClear,
	})
	r.Register(&Command{
		Name:        "/copy",
		Description: "Copy the last reply to the clipboard",
		Category:    "Conversation",
		Handler:     handleCopy,
	})
	r.Register(&Command{
		Name:        "/export",
		Description: "Write this chat to a file",
		Usage:       "/export [markdown|json]",
		Args: []ArgDef{
			{Name: "format", Type: ArgTypeEnum, Values: []string{"markdown", "md", "json"}, Description: "file format"},
		},
		Category: "Conversation",
		Handler:  handleExport,
	})

	// Settings
	r.Register(&Command{
		Name:        "/theme",
		Description: "Switch or toggle the color theme",
		Usage:       "/theme [light|dark]",
		Args: []ArgDef{
			{Name: "mode", Type: ArgTypeEnum, Values: []string{"light", "dark"}, Description: "theme mode"},
		},
		Category: "Settings",
		Handler:  handleTheme,
	})
	r.Register(&Command{
		Name:        "/sidebar",
		Description: "Collapse or expand the sidebar",
		Category:    "Settings",
		Handler:     handleSidebar,
	})
}
