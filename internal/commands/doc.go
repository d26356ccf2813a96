// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the chat screen.
//
// A draft whose first word names a registered command is run instead of
// being sent. Other input, including text that merely starts with "/", is
// sent as a message.
//
// # Key Types
//
//   - Registry: registered commands and aliases
//   - Parser / ParseResult: split a draft into command name and arguments
//   - Context: read-only application state passed to handlers
//
// # Built-in Commands
//
//   - /help, /quit, /open <session>
//   - /new, /clear, /copy, /export [markdown|json]
//   - /theme [light|dark], /sidebar
//
// # Usage
//
//	res := parser.Parse(draft)
//	if res.Command != nil {
//	    if err := commands.ValidateArgs(res.Command, res.Args); err != nil {
//	        // report err
//	    }
//	    return res.Command.Handler(ctx, res.Args)
//	}
package commands
