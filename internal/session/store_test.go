// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(now time.Time) *Store {
	cfg := DefaultConfig()
	cfg.Clock = fixedClock(now)
	return NewStore(cfg)
}

// =============================================================================
// STORE TESTS
// =============================================================================

func TestNewStore_Empty(t *testing.T) {
	s := NewStore(Config{})
	assert.Empty(t, s.List())
	assert.Equal(t, "", s.ActiveID())
	_, ok := s.Active()
	assert.False(t, ok)
	assert.Equal(t, DefaultFallbackTitle, s.ActiveTitle())
}

func TestStore_Create(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 30, 0, 0, time.Local)
	s := newTestStore(now)
	SeedDemo(s)

	sess := s.Create()

	assert.Equal(t, DefaultNewTitle, sess.Title)
	assert.Equal(t, "2026-02-14", sess.DateString())
	assert.True(t, strings.HasPrefix(sess.ID, "sess_"))

	list := s.List()
	require.Len(t, list, 4)
	assert.Equal(t, sess.ID, list[0].ID, "new session is prepended")
	assert.Equal(t, sess.ID, s.ActiveID())
	assert.Equal(t, DefaultNewTitle, s.ActiveTitle())
	assert.True(t, s.ActiveLog().IsEmpty(), "new session starts with an empty log")

	// The seeded session keeps its history
	assert.Equal(t, 3, s.Log("1").Len())
}

func TestStore_CreateSameInstant(t *testing.T) {
	s := newTestStore(time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC))

	a := s.Create()
	b := s.Create()
	c := s.Create()

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, c.ID, s.List()[0].ID)
}

func TestStore_CustomTitles(t *testing.T) {
	s := NewStore(Config{NewTitle: "Untitled", FallbackTitle: "Unknown"})
	assert.Equal(t, "Unknown", s.ActiveTitle())
	s.Create()
	assert.Equal(t, "Untitled", s.ActiveTitle())
}

func TestStore_Select(t *testing.T) {
	s := newTestStore(time.Now())
	SeedDemo(s)

	s.Select("2")
	assert.Equal(t, "2", s.ActiveID())
	assert.Equal(t, "Performance Bottleneck Fix", s.ActiveTitle())

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "2", active.ID)
}

func TestStore_SelectUnknownIsSilent(t *testing.T) {
	s := newTestStore(time.Now())
	SeedDemo(s)
	before := s.List()

	s.Select("does-not-exist")

	assert.Equal(t, "does-not-exist", s.ActiveID())
	assert.Equal(t, DefaultFallbackTitle, s.ActiveTitle())
	_, ok := s.Active()
	assert.False(t, ok)
	assert.Equal(t, before, s.List(), "list is unchanged")

	// Appending to the unknown session must not panic
	s.ActiveLog().AppendUser("ping", nil)
	assert.Equal(t, 1, s.Log("does-not-exist").Len())
}

func TestStore_IndexOf(t *testing.T) {
	s := newTestStore(time.Now())
	SeedDemo(s)
	assert.Equal(t, 0, s.IndexOf("1"))
	assert.Equal(t, 2, s.IndexOf("3"))
	assert.Equal(t, -1, s.IndexOf("9"))
}

func TestStore_ClearActive(t *testing.T) {
	s := newTestStore(time.Now())
	SeedDemo(s)
	require.False(t, s.ActiveLog().IsEmpty())

	s.ClearActive()
	assert.True(t, s.ActiveLog().IsEmpty())
	assert.Equal(t, 3, s.Len(), "clearing does not delete sessions")
}

func TestStore_AddIgnoresDuplicates(t *testing.T) {
	s := newTestStore(time.Now())
	s.Add(model.Session{ID: "x", Title: "one"})
	s.Add(model.Session{ID: "x", Title: "two"})

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "one", list[0].Title)
}

func TestStore_ListIsCopy(t *testing.T) {
	s := newTestStore(time.Now())
	SeedDemo(s)
	list := s.List()
	list[0].Title = "mutated"
	assert.Equal(t, "Deep Learning Model Analysis", s.List()[0].Title)
}

// =============================================================================
// SEED TESTS
// =============================================================================

func TestSeedDemo(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(now)
	SeedDemo(s)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Deep Learning Model Analysis", list[0].Title)
	assert.Equal(t, "2025-12-28", list[0].DateString())
	assert.Equal(t, "Performance Bottleneck Fix", list[1].Title)
	assert.Equal(t, "New Layout Concept", list[2].Title)
	assert.Equal(t, "1", s.ActiveID())

	msgs := s.ActiveLog().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, model.RoleAssistant, msgs[0].Role)
	assert.Equal(t, now.Add(-time.Hour), msgs[0].Timestamp)
	assert.Equal(t, model.RoleUser, msgs[1].Role)

	steps := model.Trace(msgs[2].Steps)
	require.NoError(t, steps.Validate())
	require.Len(t, steps, 4)
	cmd, ok := steps.Find("s2")
	require.True(t, ok)
	assert.Equal(t, model.StepCommand, cmd.Type)
	assert.Contains(t, cmd.Details, "OOM CRASH")
	assert.Empty(t, steps.Unresolved())

	// Seeding twice does not duplicate anything
	SeedDemo(s)
	assert.Len(t, s.List(), 3)
	assert.Equal(t, 3, s.ActiveLog().Len())
}
