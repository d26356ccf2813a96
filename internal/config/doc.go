// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for tracechat.
//
// Supports TOML, JSON and YAML configuration formats, with defaults,
// environment variable overrides, validation and hot reload.
//
// # Key Types
//
//   - Config: main configuration structure
//   - UIConfig: theme, sidebar, timestamps, markdown
//   - ResponderConfig: simulated reply delay and text
//   - SessionConfig: placeholder and fallback titles, demo seed
//   - LoggingConfig: log level and file
//   - Watcher: fsnotify-based reload of a config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (TRACECHAT_*)
//   - ~/.tracechat/config.toml
//   - ~/.tracechat/config.json
//   - ~/.tracechat/config.yaml
//   - Built-in defaults
//
// There is no process-wide instance; callers pass *Config explicitly.
//
// # Usage
//
//	cfg, path, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	delay := cfg.Responder.Delay.Std()
package config
