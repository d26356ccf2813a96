// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"time"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// =============================================================================
// DEMO SEED
// =============================================================================

// DemoSessions returns the sessions installed by SeedDemo, most recent first.
func DemoSessions() []model.Session {
	return []model.Session{
		{ID: "1", Title: "Deep Learning Model Analysis", Date: model.MustDate("2025-12-28")},
		{ID: "2", Title: "Performance Bottleneck Fix", Date: model.MustDate("2025-12-27")},
		{ID: "3", Title: "New Layout Concept", Date: model.MustDate("2025-12-26")},
	}
}

// DemoMessages returns the opening conversation of the first demo session,
// timestamped relative to now.
func DemoMessages(now time.Time) []model.Message {
	return []model.Message{
		{
			ID:        "m1",
			Role:      model.RoleAssistant,
			Content:   "Greetings! I am your Advanced Intelligence Agent. How can I assist you with your project today?",
			Timestamp: now.Add(-time.Hour),
		},
		{
			ID:        "m2",
			Role:      model.RoleUser,
			Content:   "Can you help me investigate the memory leak in the production logs I've uploaded?",
			Timestamp: now.Add(-50 * time.Minute),
		},
		{
			ID:        "m3",
			Role:      model.RoleAssistant,
			Content:   "I've analyzed the logs. It seems the heap usage grows steadily after each garbage collection cycle, indicating a possible closure leak in the request handler.",
			Timestamp: now.Add(-2000 * time.Second),
			Steps: []model.TraceStep{
				{ID: "s1", Type: model.StepThought, Content: "Identifying memory pressure patterns in logs", Status: model.StatusCompleted},
				{
					ID:      "s2",
					Type:    model.StepCommand,
					Content: `cat memory_logs_prod.txt | grep "heap_used"`,
					Status:  model.StatusCompleted,
					Details: "HEAP MAP:\n0min: 45MB\n5min: 120MB\n10min: 340MB\n15min: 890MB (OOM CRASH)",
				},
				{ID: "s3", Type: model.StepPlan, Content: "Correlate with active connections", Status: model.StatusCompleted},
				{ID: "s4", Type: model.StepAction, Content: "Suggesting heap dump analysis", Status: model.StatusCompleted},
			},
		},
	}
}

// SeedDemo installs the demo sessions, selects the first one and fills its
// log with the opening conversation.
func SeedDemo(s *Store) {
	sessions := DemoSessions()
	for _, sess := range sessions {
		s.Add(sess)
	}
	first := sessions[0].ID
	s.Select(first)

	log := s.Log(first)
	if !log.IsEmpty() {
		return
	}
	for _, msg := range DemoMessages(s.clock()) {
		log.Append(msg)
	}
}
