// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNotAFile is returned when an attach path names a directory.
var ErrNotAFile = errors.New("not a regular file")

// DefaultMimeType is used when the extension is unknown.
const DefaultMimeType = "application/octet-stream"

// =============================================================================
// ATTACHMENT HANDLES
// =============================================================================

// File is a FileHandle built from metadata only.
type File struct {
	name     string
	mimeType string
}

// NewFile creates a handle from a name and MIME type. An empty MIME type is
// derived from the name.
func NewFile(name, mimeType string) File {
	if mimeType == "" {
		mimeType = MimeTypeOf(name)
	}
	return File{name: name, mimeType: mimeType}
}

// Name returns the base file name.
func (f File) Name() string { return f.name }

// MimeType returns the MIME type.
func (f File) MimeType() string { return f.mimeType }

// FromPath builds a handle for a file on disk. The file is stat'ed but never
// opened.
func FromPath(path string) (File, error) {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)
	if path == "" {
		return File{}, fmt.Errorf("attach: empty path")
	}
	path = expandHome(path)

	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("attach %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("attach %s: %w", path, ErrNotAFile)
	}
	// Some filesystems return decomposed names; chips and logs use NFC.
	return NewFile(norm.NFC.String(filepath.Base(path)), ""), nil
}

// expandHome replaces a leading "~" or "~/" with the home directory.
// "~user" forms are left alone.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// MimeTypeOf guesses a MIME type from a file name's extension.
func MimeTypeOf(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return DefaultMimeType
	}
	if t, ok := extraTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return DefaultMimeType
	}
	// Drop parameters such as "; charset=utf-8"
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}

// extraTypes covers extensions the host MIME table often lacks.
var extraTypes = map[string]string{
	".ts":   "text/x-typescript",
	".py":   "text/x-python",
	".go":   "text/x-go",
	".md":   "text/markdown",
	".log":  "text/plain",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".toml": "application/toml",
}

// =============================================================================
// KIND
// =============================================================================

// Kind groups attachments for icon choice.
type Kind int

const (
	KindDocument Kind = iota
	KindImage
	KindCode
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindCode:
		return "code"
	default:
		return "document"
	}
}

// KindOf classifies an attachment: images by MIME type, code by a javascript
// MIME type or a .ts/.py name, everything else is a document.
func KindOf(mimeType, name string) Kind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.Contains(mimeType, "javascript"),
		strings.HasSuffix(name, ".ts"),
		strings.HasSuffix(name, ".py"):
		return KindCode
	default:
		return KindDocument
	}
}
