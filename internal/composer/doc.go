// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package composer holds the pending user turn.
//
// A Composer keeps the text draft, the staged attachments and the busy gate.
// Submit is refused while busy or when the trimmed draft is empty and no
// files are staged; a refused submit leaves everything untouched.
//
// Attachments are metadata only. FromPath stats a file and keeps its base
// name and a MIME type guessed from the extension; contents are never read.
//
// # Usage
//
//	c := composer.New()
//	c.SetDraft("check these logs")
//	if f, err := composer.FromPath("~/logs/heap.log"); err == nil {
//	    c.AddFiles(f)
//	}
//	sub, ok := c.Submit()
package composer
