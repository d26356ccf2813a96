// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watch errors are reported at most this often, with a small burst.
const (
	errorReportInterval = time.Second
	errorReportBurst    = 3
)

// =============================================================================
// HOT RELOAD
// =============================================================================

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func(*Config, error)
	errLimit *rate.Limiter

	done      chan struct{}
	closeOnce sync.Once
}

// Watch starts watching path. onChange is called from the watcher goroutine
// with the reloaded config, or with the load error if the new file is
// invalid. The parent directory is watched because editors often replace
// files by rename.
func Watch(path string, onChange func(*Config, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		onChange: onChange,
		errLimit: rate.NewLimiter(rate.Every(errorReportInterval), errorReportBurst),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFromPath(w.path)
			if w.onChange != nil {
				w.onChange(cfg, err)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Overflow errors arrive in bursts; drop the excess.
			if w.onChange != nil && w.errLimit.Allow() {
				w.onChange(nil, fmt.Errorf("watch %s: %w", w.path, err))
			}
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}
