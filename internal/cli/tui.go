// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tracechat-tui/internal/config"
	"github.com/jeranaias/tracechat-tui/internal/conversation"
	"github.com/jeranaias/tracechat-tui/internal/session"
	"github.com/jeranaias/tracechat-tui/internal/ui/chat"
)

// runTUI starts the interactive chat screen and blocks until it exits.
func runTUI(cmd *cobra.Command, app *App) error {
	store := app.newStore()
	if app.Config.Session.SeedDemo {
		session.SeedDemo(store)
	} else {
		store.Create()
	}
	svc := conversation.NewService(store, app.newResponder(false), app.Logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reloads := make(chan chat.ConfigReloadedMsg, 1)
	if app.ConfigPath != "" {
		w, err := config.Watch(app.ConfigPath, func(cfg *config.Config, err error) {
			// Drop the event if the UI has not consumed the previous one.
			select {
			case reloads <- chat.ConfigReloadedMsg{Config: cfg, Err: err}:
			default:
			}
		})
		if err != nil {
			app.Logger.Warn("config watch disabled", zap.String("path", app.ConfigPath), zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	m := chat.New(svc, chat.Options{
		Config:  app.Config,
		Logger:  app.Logger,
		Reloads: reloads,
		Context: ctx,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	app.Logger.Info("interface closed", zap.Int("sessions", store.Len()))
	return nil
}
