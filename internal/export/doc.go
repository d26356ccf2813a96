// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a session's messages and reasoning traces as a
// Markdown or JSON document.
//
// Exports are one-way snapshots; nothing reads them back.
//
// # Key Types
//
//   - Transcript: the session, its title and its messages at export time
//   - Exporter: format interface (MarkdownExporter, JSONExporter)
//   - Options: output directory and which parts to include
//
// # Usage
//
//	t := export.FromStore(store)
//	e, err := export.ForFormat("markdown", nil)
//	path, err := export.ExportToFile(t, e, &export.Options{OutputDir: dir})
package export
