// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder produces assistant replies to user messages.
//
// The Responder interface is the only seam between the chat state and
// whatever generates answers. Mock waits a fixed delay and returns a canned
// reply with a two-step trace; a real backend only has to implement Respond.
//
// # Usage
//
//	r := responder.NewMock(responder.DefaultDelay)
//	reply, err := r.Respond(ctx, responder.Request{SessionID: id, Message: msg})
package responder
