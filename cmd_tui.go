// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/chatdash/internal/config"
	"github.com/jeranaias/chatdash/internal/logging"
	"github.com/jeranaias/chatdash/internal/ui/dashboard"
)

// ErrNotTerminal is returned when the dashboard is started without a TTY.
var ErrNotTerminal = errors.New("stdout is not a terminal; use 'chatdash transcript' instead")

// TUICmd starts the interactive dashboard.
type TUICmd struct {
	NoWatch bool `help:"Do not reload the config file when it changes"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(cli *CLI) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	cfg, path, err := cli.loadConfig()
	if err != nil {
		return err
	}

	// Nothing may reach stdout/stderr while the alt screen is up.
	logger, closer := logging.NewFileLogger(cfg.LogPath(), cfg.Log.Level)
	defer closer.Close()
	logger.Info("starting dashboard", "version", Version, "config", path, "theme", cfg.UI.Theme)

	m := dashboard.New(cfg,
		dashboard.WithLogger(logger),
		dashboard.WithConfigPath(path),
	)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !c.NoWatch {
		go func() {
			err := config.Watch(ctx, path, logger, func(updated *config.Config) {
				p.Send(dashboard.ConfigReloadedMsg{Config: updated})
			})
			if err != nil {
				logger.Warn("config watch stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		logger.Error("dashboard exited with error", "error", err)
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info("dashboard closed")
	return nil
}
