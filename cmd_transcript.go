// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/chatdash/internal/conversation"
	"github.com/jeranaias/chatdash/internal/export"
	"github.com/jeranaias/chatdash/internal/logging"
)

// ErrRejected is returned when the conversation refuses a request.
var ErrRejected = errors.New("request rejected")

// replyWait bounds how long the transcript command waits for a reply.
const replyWait = 4 * conversation.ReplyLatency

// TranscriptCmd prints the conversation log without a terminal UI.
type TranscriptCmd struct {
	Send       string `short:"s" help:"Send a message and wait for the reply"`
	Regenerate bool   `short:"r" help:"Regenerate the last reply (after --send, if given)"`
	Format     string `short:"f" enum:"text,markdown,json" default:"text" help:"Output format (text, markdown, json)"`
}

// Run executes the transcript command.
func (c *TranscriptCmd) Run(cli *CLI) error {
	cfg, _, err := cli.loadConfig()
	if err != nil {
		return err
	}
	logger := logging.NewConsoleLogger(os.Stderr, cfg.Log.Level)

	exporter, err := export.New(c.Format, export.DefaultOptions())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*replyWait)
	defer cancel()

	return runTranscript(ctx, os.Stdout, logger, exporter, c.Send, c.Regenerate)
}

// runTranscript drives a controller through the requested operations and
// writes the resulting log to w.
func runTranscript(ctx context.Context, w io.Writer, logger *slog.Logger, exporter export.Exporter, send string, regenerate bool, opts ...conversation.Option) error {
	settled := make(chan struct{}, 1)
	opts = append([]conversation.Option{conversation.WithLogger(logger)}, opts...)
	opts = append(opts, conversation.WithNotify(func(s conversation.Snapshot) {
		if s.Pending {
			return
		}
		select {
		case settled <- struct{}{}:
		default:
		}
	}))

	ctrl := conversation.New(opts...)
	defer ctrl.Close()

	await := func(what string, accepted bool) error {
		if !accepted {
			return fmt.Errorf("%s: %w", what, ErrRejected)
		}
		logger.Info("waiting for reply", "op", what)
		select {
		case <-settled:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", what, ctx.Err())
		}
	}

	if text := strings.TrimSpace(send); text != "" {
		if err := await("send", ctrl.Submit(norm.NFC.String(text))); err != nil {
			return err
		}
	}
	if regenerate {
		if err := await("regenerate", ctrl.Regenerate()); err != nil {
			return err
		}
	}

	data, err := exporter.Export(ctrl.Messages())
	if err != nil {
		return fmt.Errorf("export transcript: %w", err)
	}
	_, err = w.Write(data)
	return err
}
