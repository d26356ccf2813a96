// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package composer holds the pending user turn: a text draft plus the files
// staged to go with it.
package composer

import (
	"strings"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// FileHandle is a file picked by the user. Only its name and MIME type are
// ever used.
type FileHandle interface {
	Name() string
	MimeType() string
}

// Submission is the payload of an accepted submit.
type Submission struct {
	Content string
	Files   []model.Attachment
}

// =============================================================================
// COMPOSER
// =============================================================================

// Composer is the draft state of the input area.
type Composer struct {
	draft string
	files []FileHandle
	busy  bool
}

// New creates an empty composer.
func New() *Composer {
	return &Composer{}
}

// Draft returns the current text.
func (c *Composer) Draft() string {
	return c.draft
}

// SetDraft replaces the text.
func (c *Composer) SetDraft(s string) {
	c.draft = s
}

// Files returns the staged files in the order they were added.
func (c *Composer) Files() []FileHandle {
	out := make([]FileHandle, len(c.files))
	copy(out, c.files)
	return out
}

// FileCount returns the number of staged files.
func (c *Composer) FileCount() int {
	return len(c.files)
}

// AddFiles appends files. The same file may be added more than once.
func (c *Composer) AddFiles(files ...FileHandle) {
	for _, f := range files {
		if f != nil {
			c.files = append(c.files, f)
		}
	}
}

// RemoveFile removes the file at index. Out-of-range indexes are ignored.
func (c *Composer) RemoveFile(index int) {
	if index < 0 || index >= len(c.files) {
		return
	}
	c.files = append(c.files[:index:index], c.files[index+1:]...)
}

// Busy reports whether a response is in flight.
func (c *Composer) Busy() bool {
	return c.busy
}

// SetBusy opens or closes the submit gate.
func (c *Composer) SetBusy(busy bool) {
	c.busy = busy
}

// HasContent reports whether there is anything to send.
func (c *Composer) HasContent() bool {
	return strings.TrimSpace(c.draft) != "" || len(c.files) > 0
}

// CanSubmit reports whether Submit would be accepted.
func (c *Composer) CanSubmit() bool {
	return !c.busy && c.HasContent()
}

// Submit returns the draft and files and resets the composer. It is refused,
// with no state change, when there is nothing to send or a response is in
// flight.
func (c *Composer) Submit() (Submission, bool) {
	if !c.CanSubmit() {
		return Submission{}, false
	}

	sub := Submission{Content: c.draft}
	if len(c.files) > 0 {
		sub.Files = make([]model.Attachment, len(c.files))
		for i, f := range c.files {
			sub.Files[i] = model.Attachment{Name: f.Name(), MimeType: f.MimeType()}
		}
	}

	c.draft = ""
	c.files = nil
	return sub, true
}
