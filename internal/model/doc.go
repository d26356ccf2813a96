// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for sessions, messages and
// reasoning traces.
//
// # Key Types
//
//   - Session: a named investigation thread (id, title, creation date)
//   - Message: single message with role, content, timestamp, attachments and
//     an optional trace
//   - TraceStep: one reasoning step (Thought, Action, Search, Command, Plan)
//     with a status and optional details
//   - Log: append-only message list of one session
//
// # Usage
//
//	log := model.NewLog()
//	log.AppendUser("Can you check the heap?", nil)
//	log.AppendAssistant("Looking into it.", []model.TraceStep{
//	    {ID: "s1", Type: model.StepThought, Content: "Reading logs", Status: model.StatusRunning},
//	})
package model
