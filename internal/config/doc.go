// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chatdash.
//
// The configuration only carries presentation and logging preferences. It
// never stores conversation content.
//
// # Configuration Precedence
//
//   - Environment variables (CHATDASH_THEME, CHATDASH_LOG_LEVEL, CHATDASH_LOG_FILE)
//   - --config path, or ~/.chatdash/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//
// Reload on change while the TUI is running:
//
//	go config.Watch(ctx, path, logger, func(c *config.Config) {
//	    program.Send(dashboard.ConfigReloadedMsg{Config: c})
//	})
package config
