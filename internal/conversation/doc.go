// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation drives the submit → reply cycle.
//
// Submit appends the user message to the active session and closes the busy
// gate. Generate calls the responder and may run on any goroutine. Deliver
// appends the reply to the session the message was sent from, even if the
// user has since switched sessions, and reopens the gate. One reply is in
// flight at a time across the whole application.
package conversation
