// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the investigation sessions shown in the sidebar.
//
// A Store keeps sessions most-recent-first, tracks the active session id and
// owns one model.Log per session. Selecting an unknown id is not an error;
// the header then shows the fallback title.
//
// # Key Types
//
//   - Store: ordered sessions, active selection, per-session logs
//   - Config: placeholder and fallback titles, clock and logger
//
// # Usage
//
//	store := session.NewStore(session.DefaultConfig())
//	session.SeedDemo(store)
//
//	sess := store.Create()      // prepended and active, empty log
//	store.Select("2")
//	fmt.Println(store.ActiveTitle())
package session
