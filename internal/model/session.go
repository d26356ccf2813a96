// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// DateLayout is the calendar date format shown for sessions.
const DateLayout = "2006-01-02"

// Session is a named investigation thread shown in the sidebar.
// Sessions are never renamed or deleted.
type Session struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// DateString returns the session's creation date as YYYY-MM-DD.
func (s Session) DateString() string {
	if s.Date.IsZero() {
		return ""
	}
	return s.Date.Format(DateLayout)
}

// Day truncates t to its calendar date in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MustDate parses a YYYY-MM-DD literal, panicking on malformed input.
// It is intended for fixed seed data.
func MustDate(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}
