// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the ordered list of investigation sessions, the
// active selection and one message log per session.
package session

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// Default labels.
const (
	DefaultNewTitle      = "New Investigation"
	DefaultFallbackTitle = "Investigation"
)

// =============================================================================
// STORE
// =============================================================================

// Store tracks sessions most-recent-first and which one is active.
type Store struct {
	mu sync.Mutex

	sessions []model.Session
	activeID string
	logs     map[string]*model.Log

	newTitle      string
	fallbackTitle string
	clock         func() time.Time
	logger        *zap.Logger
}

// Config holds configuration for the session store.
type Config struct {
	// NewTitle is the placeholder title of sessions created by Create.
	NewTitle string

	// FallbackTitle is shown when the active id matches no session.
	FallbackTitle string

	// Clock returns the current instant (default: time.Now).
	Clock func() time.Time

	// Logger receives session lifecycle events (default: no-op).
	Logger *zap.Logger
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{
		NewTitle:      DefaultNewTitle,
		FallbackTitle: DefaultFallbackTitle,
		Clock:         time.Now,
		Logger:        zap.NewNop(),
	}
}

// NewStore creates an empty store with no active session.
func NewStore(cfg Config) *Store {
	if cfg.NewTitle == "" {
		cfg.NewTitle = DefaultNewTitle
	}
	if cfg.FallbackTitle == "" {
		cfg.FallbackTitle = DefaultFallbackTitle
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Store{
		sessions:      make([]model.Session, 0),
		logs:          make(map[string]*model.Log),
		newTitle:      cfg.NewTitle,
		fallbackTitle: cfg.FallbackTitle,
		clock:         cfg.Clock,
		logger:        cfg.Logger,
	}
}

// =============================================================================
// QUERIES
// =============================================================================

// List returns the sessions, most recent first.
func (s *Store) List() []model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ActiveID returns the active session id, which may name no session.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active returns the active session if the active id matches one.
func (s *Store) Active() (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(s.activeID)
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

// ActiveTitle returns the active session's title, or the fallback label.
func (s *Store) ActiveTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.findLocked(s.activeID); ok {
		return sess.Title
	}
	return s.fallbackTitle
}

// IndexOf returns the list position of a session, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sess := range s.sessions {
		if sess.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findLocked(id string) (model.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return model.Session{}, false
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Select makes id the active session. Unknown ids are accepted without error;
// lookups for them simply fail.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == id {
		return
	}
	s.activeID = id
	s.logger.Debug("session selected", zap.String("session_id", id))
}

// Create prepends a new session, makes it active and gives it an empty log.
func (s *Store) Create() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	sess := model.Session{
		ID:    s.uniqueIDLocked(now),
		Title: s.newTitle,
		Date:  model.Day(now),
	}
	s.sessions = append([]model.Session{sess}, s.sessions...)
	s.activeID = sess.ID
	s.logs[sess.ID] = model.NewLog()

	s.logger.Info("session created",
		zap.String("session_id", sess.ID),
		zap.Int("sessions", len(s.sessions)),
	)
	return sess
}

// Add appends an existing session at the end of the list, keeping its id,
// title and date. It is used to install seed data in display order.
// Sessions whose id is already present are ignored.
func (s *Store) Add(sess model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findLocked(sess.ID); ok {
		return
	}
	s.sessions = append(s.sessions, sess)
	if _, ok := s.logs[sess.ID]; !ok {
		s.logs[sess.ID] = model.NewLog()
	}
}

// Log returns the message log of a session. Logs for unknown ids are created
// on first use so appends never fail.
func (s *Store) Log(id string) *model.Log {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.logs[id]
	if !ok {
		l = model.NewLog()
		s.logs[id] = l
	}
	return l
}

// ActiveLog returns the log of the active session.
func (s *Store) ActiveLog() *model.Log {
	return s.Log(s.ActiveID())
}

// ClearActive empties the active session's log.
func (s *Store) ClearActive() {
	s.ActiveLog().Clear()
}

// uniqueIDLocked derives an id from the creation instant. Two sessions created
// in the same millisecond get a numeric suffix.
func (s *Store) uniqueIDLocked(now time.Time) string {
	base := "sess_" + strconv.FormatInt(now.UnixMilli(), 10)
	id := base
	for n := 2; ; n++ {
		if _, taken := s.findLocked(id); !taken {
			return id
		}
		id = base + "_" + strconv.Itoa(n)
	}
}
