// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClipboard records writes and can be told to fail.
type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func TestCopier_Success(t *testing.T) {
	cb := &fakeClipboard{}
	assert.True(t, NewCopier(cb, nil).Copy("code", "let x = 1;"))
	assert.Equal(t, []string{"let x = 1;"}, cb.writes)
}

func TestCopier_FailureIsLoggedAndIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cb := &fakeClipboard{err: errors.New("no xclip")}

	assert.False(t, NewCopier(cb, logger).Copy("message", "hi"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "copy to clipboard failed")
	assert.Contains(t, buf.String(), "no xclip")
}

func TestCopier_RepeatedFailuresWarnOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	copier := NewCopier(&fakeClipboard{err: errors.New("no xclip")}, logger)

	for i := 0; i < 3; i++ {
		assert.False(t, copier.Copy("code", "x"))
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
	assert.Equal(t, 2, strings.Count(buf.String(), "level=DEBUG"))
}

func TestCopier_NilClipboard(t *testing.T) {
	assert.False(t, NewCopier(nil, nil).Copy("code", "x"))
	var nilCopier *Copier
	assert.False(t, nilCopier.Copy("code", "x"))
}

func TestFlash_TriggerAndExpire(t *testing.T) {
	f := NewFlash("code")
	cmd := f.Trigger("HTML")
	require.NotNil(t, cmd)
	assert.True(t, f.Active())
	assert.True(t, f.ActiveFor("HTML"))
	assert.False(t, f.ActiveFor("CSS"))

	assert.True(t, f.Expire(FlashExpiredMsg{Key: "code", Token: 1}))
	assert.False(t, f.Active())
}

func TestFlash_StaleTimerIgnored(t *testing.T) {
	f := NewFlash("code")
	f.Trigger("HTML")
	f.Trigger("CSS")

	assert.False(t, f.Expire(FlashExpiredMsg{Key: "code", Token: 1}), "first timer is stale")
	assert.True(t, f.ActiveFor("CSS"))
	assert.False(t, f.Expire(FlashExpiredMsg{Key: "message", Token: 2}), "other key")
	assert.True(t, f.Expire(FlashExpiredMsg{Key: "code", Token: 2}))
}
