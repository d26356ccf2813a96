// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the tracechat command line.
//
// The root command starts the interactive chat screen. Subcommands cover
// headless use and configuration:
//
//	tracechat                      start the interface
//	tracechat ask [message...]     send one message and print the transcript
//	tracechat config show          print the effective configuration
//	tracechat config path          show which file was loaded
//	tracechat config init          write a default config file
//	tracechat version              print version information
//
// # Global Flags
//
//	--config PATH    load this file instead of searching ~/.tracechat
//	--theme MODE     light, dark or auto
//	--delay DUR      simulated reply delay, e.g. 500ms
//	-v, --verbose    log at debug level
//
// Logs go to a file (logging.file, default ~/.tracechat/tracechat.log)
// because the interface owns the terminal.
//
// # Exit Codes
//
// ExitUsageError is returned for bad flags or arguments, ExitConfigError for
// an unreadable or invalid config file, and ExitInterrupted when ask is
// cancelled with Ctrl+C.
package cli
