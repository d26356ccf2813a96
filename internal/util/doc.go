// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small text and file helpers shared by the packages
// of the chat client.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth, PadRight, StringWidth: display-width aware helpers
//     backed by go-runewidth
//   - FirstLine: first non-blank line of a block of text
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	title := util.TruncateWidth(session.Title, 24)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
