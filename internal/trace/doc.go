// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trace tracks presentation state for reasoning traces.
//
// Expansion state is a set of step ids per message. It belongs to the
// rendering context: the chat view resets it whenever the displayed session
// changes. Nothing here is persisted.
//
// # Key Types
//
//   - Expansion: set of expanded step ids, zero value usable
//   - Expansions: one Expansion per message id
//   - Cursor: keyboard focus over the steps of the visible thread
package trace
