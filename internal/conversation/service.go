// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation wires the session store, the composer and a responder
// into the submit → reply cycle.
package conversation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/responder"
	"github.com/jeranaias/tracechat-tui/internal/session"
)

// Pending is a submitted user message waiting for its reply.
type Pending struct {
	SessionID string
	Message   model.Message
	Started   time.Time
}

// Request converts the pending turn into a responder request.
func (p Pending) Request() responder.Request {
	return responder.Request{SessionID: p.SessionID, Message: p.Message}
}

// =============================================================================
// SERVICE
// =============================================================================

// Service owns the chat state. All methods except Generate must be called
// from a single goroutine (the Bubble Tea update loop).
type Service struct {
	store     *session.Store
	composer  *composer.Composer
	responder responder.Responder
	logger    *zap.Logger
}

// NewService creates a service. A nil logger is replaced by a no-op logger.
func NewService(store *session.Store, r responder.Responder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		composer:  composer.New(),
		responder: r,
		logger:    logger,
	}
}

// Store returns the session store.
func (s *Service) Store() *session.Store { return s.store }

// Composer returns the draft state.
func (s *Service) Composer() *composer.Composer { return s.composer }

// Busy reports whether a reply is in flight.
func (s *Service) Busy() bool { return s.composer.Busy() }

// Sessions returns the sessions, most recent first.
func (s *Service) Sessions() []model.Session { return s.store.List() }

// ActiveID returns the active session id.
func (s *Service) ActiveID() string { return s.store.ActiveID() }

// ActiveTitle returns the header title.
func (s *Service) ActiveTitle() string { return s.store.ActiveTitle() }

// Messages returns the active session's log.
func (s *Service) Messages() []model.Message { return s.store.ActiveLog().Messages() }

// LastReply returns the most recent assistant message of the active session.
func (s *Service) LastReply() (model.Message, bool) {
	return s.store.ActiveLog().LastAssistant()
}

// Select switches the active session.
func (s *Service) Select(id string) {
	s.store.Select(id)
}

// NewChat creates and activates an empty session. It is allowed while a reply
// is in flight; that reply still lands in its own session.
func (s *Service) NewChat() model.Session {
	return s.store.Create()
}

// ClearActive empties the active session's log.
func (s *Service) ClearActive() {
	s.store.ClearActive()
	s.logger.Info("session cleared", zap.String("session_id", s.store.ActiveID()))
}

// =============================================================================
// SUBMIT / REPLY CYCLE
// =============================================================================

// Submit takes the composer's draft, appends it as a user message to the
// active session and marks the service busy. It returns false when the
// composer refuses the submit.
func (s *Service) Submit() (Pending, bool) {
	sub, ok := s.composer.Submit()
	if !ok {
		return Pending{}, false
	}

	sessionID := s.store.ActiveID()
	msg := s.store.Log(sessionID).AppendUser(sub.Content, sub.Files)
	s.composer.SetBusy(true)

	s.logger.Info("message appended",
		zap.String("session_id", sessionID),
		zap.String("message_id", msg.ID),
		zap.String("role", msg.Role.String()),
		zap.Int("files", len(msg.Files)),
	)
	return Pending{SessionID: sessionID, Message: msg, Started: time.Now()}, true
}

// Generate asks the responder for a reply. It blocks and is safe to call off
// the UI goroutine.
func (s *Service) Generate(ctx context.Context, p Pending) (responder.Reply, error) {
	s.logger.Debug("responder started", zap.String("session_id", p.SessionID))
	reply, err := s.responder.Respond(ctx, p.Request())
	if err != nil {
		return responder.Reply{}, err
	}
	if reply.SessionID == "" {
		reply.SessionID = p.SessionID
	}
	return reply, nil
}

// Deliver appends the reply to its originating session and clears busy.
func (s *Service) Deliver(reply responder.Reply, started time.Time) model.Message {
	msg := s.store.Log(reply.SessionID).AppendAssistant(reply.Content, reply.Steps)
	s.composer.SetBusy(false)

	fields := []zap.Field{
		zap.String("session_id", reply.SessionID),
		zap.String("message_id", msg.ID),
		zap.Int("steps", len(msg.Steps)),
	}
	if !started.IsZero() {
		fields = append(fields, zap.Duration("latency", time.Since(started)))
	}
	s.logger.Info("reply delivered", fields...)
	return msg
}

// Fail clears busy after a responder error. Nothing is appended.
func (s *Service) Fail(p Pending, err error) {
	s.composer.SetBusy(false)
	s.logger.Warn("responder failed",
		zap.String("session_id", p.SessionID),
		zap.Error(err),
	)
}

// Exchange runs one full cycle synchronously: submit, generate, deliver.
// Headless callers use it; the TUI drives the steps separately.
func (s *Service) Exchange(ctx context.Context) (model.Message, bool, error) {
	p, ok := s.Submit()
	if !ok {
		return model.Message{}, false, nil
	}
	reply, err := s.Generate(ctx, p)
	if err != nil {
		s.Fail(p, err)
		return model.Message{}, true, err
	}
	return s.Deliver(reply, p.Started), true, nil
}
