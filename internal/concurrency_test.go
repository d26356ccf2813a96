// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package internal contains race detection tests for tracechat.
//
// Run with: go test -race -v ./internal/...
//
// The UI mutates state from a single goroutine, but responder calls, the
// config watcher and headless exports run beside it. These tests exercise
// the shared types from many goroutines at once.
package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/config"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/export"
	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/responder"
	"github.com/jeranaias/tracechat-tui/internal/session"
)

// =============================================================================
// TEST CONFIGURATION
// =============================================================================

const (
	// Number of concurrent goroutines for race tests
	raceConcurrency = 50
	// Number of iterations per goroutine
	raceIterations = 40
	// Timeout for race tests
	raceTimeout = 30 * time.Second
)

// =============================================================================
// SESSION STORE
// =============================================================================

func TestConcurrency_StoreCreateSelectList(t *testing.T) {
	store := session.NewStore(session.DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < raceConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < raceIterations/4; j++ {
				s := store.Create()
				store.Select(s.ID)
				_ = store.List()
				_ = store.ActiveTitle()
			}
		}()
	}
	wg.Wait()

	sessions := store.List()
	require.Len(t, sessions, raceConcurrency*(raceIterations/4))

	seen := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		assert.False(t, seen[s.ID], "duplicate session id %s", s.ID)
		seen[s.ID] = true
	}
}

// =============================================================================
// MESSAGE LOG
// =============================================================================

func TestConcurrency_LogAppendAndRead(t *testing.T) {
	log := model.NewLog()

	var wg sync.WaitGroup
	for i := 0; i < raceConcurrency; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < raceIterations; j++ {
				log.AppendUser(fmt.Sprintf("w%d-%d", i, j), nil)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < raceIterations; j++ {
				for _, m := range log.Messages() {
					_ = m.Preview(10)
				}
				_, _ = log.Last()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, raceConcurrency*raceIterations, log.Len())
}

// =============================================================================
// CONVERSATION
// =============================================================================

// TestConcurrency_GenerateBesideUI runs responder calls on worker goroutines
// while another goroutine plays the UI: switching sessions, reading the log
// and exporting.
func TestConcurrency_GenerateBesideUI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), raceTimeout)
	defer cancel()

	store := session.NewStore(session.DefaultConfig())
	session.SeedDemo(store)
	svc := conversation.NewService(store, responder.NewMock(0), zap.NewNop())

	pendings := make([]conversation.Pending, 0, raceConcurrency)
	for i := 0; i < raceConcurrency; i++ {
		svc.Composer().SetDraft(fmt.Sprintf("question %d", i))
		p, ok := svc.Submit()
		require.True(t, ok)
		pendings = append(pendings, p)
		// Release the busy gate so the next submit is accepted.
		svc.Composer().SetBusy(false)
	}

	replies := make(chan responder.Reply, raceConcurrency)
	var wg sync.WaitGroup
	for _, p := range pendings {
		wg.Add(1)
		go func(p conversation.Pending) {
			defer wg.Done()
			reply, err := svc.Generate(ctx, p)
			if assert.NoError(t, err) {
				replies <- reply
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ids := []string{"1", "2", "3"}
		for j := 0; j < raceIterations; j++ {
			svc.Select(ids[j%len(ids)])
			_ = svc.Messages()
			_ = export.FromStore(store)
		}
		svc.Select("1")
	}()

	wg.Wait()
	close(replies)
	<-done

	for r := range replies {
		svc.Deliver(r, time.Time{})
	}
	// 3 seeded messages plus one question and one reply per worker.
	assert.Equal(t, 3+2*raceConcurrency, store.Log("1").Len())
	assert.False(t, svc.Busy())
}

// =============================================================================
// CONFIG WATCHER
// =============================================================================

func TestConcurrency_ConfigRapidChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.Save(config.Default(), path))

	var mu sync.Mutex
	var loaded []*config.Config
	w, err := config.Watch(path, func(cfg *config.Config, err error) {
		if err != nil {
			return
		}
		mu.Lock()
		loaded = append(loaded, cfg)
		mu.Unlock()
	})
	require.NoError(t, err)

	themes := []string{"light", "dark"}
	for i := 0; i < 20; i++ {
		cfg := config.Default()
		cfg.UI.Theme = themes[i%2]
		require.NoError(t, config.Save(cfg, path))
	}

	cfg := config.Default()
	cfg.UI.Theme = "light"
	cfg.Responder.Reply = "final"
	require.NoError(t, config.Save(cfg, path))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(loaded) > 0 && loaded[len(loaded)-1].Responder.Reply == "final"
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	// No callbacks after Close returns.
	mu.Lock()
	n := len(loaded)
	mu.Unlock()
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0600))
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, n, len(loaded))
}
