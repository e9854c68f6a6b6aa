// chatdash - a terminal dashboard for an AI chat helper.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jeranaias/chatdash/internal/config"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// CLI is the command line surface.
type CLI struct {
	Config   string `help:"Path to config file (default ~/.chatdash/config.toml)" type:"path"`
	LogLevel string `help:"Override log level (debug, info, warn, error)"`

	TUI        TUICmd        `cmd:"" name:"tui" default:"1" help:"Start the interactive dashboard (default)"`
	Transcript TranscriptCmd `cmd:"" help:"Print the conversation log, optionally sending a message first"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// loadConfig resolves the config path, loads it and applies --log-level.
func (c *CLI) loadConfig() (*config.Config, string, error) {
	path := c.Config
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
	}
	return cfg, path, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chatdash"),
		kong.Description("Terminal dashboard for an AI chat helper"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
