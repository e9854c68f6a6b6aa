// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatdash/internal/logging"
)

// clearEnv blanks the override variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CHATDASH_THEME", "CHATDASH_LOG_LEVEL", "CHATDASH_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// =============================================================================
// LOAD
// =============================================================================

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[ui]\ntheme = \"Light\"\nsidebar_collapsed = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.UI.Theme)
	assert.True(t, cfg.UI.SidebarCollapsed)
	assert.Equal(t, DefaultBreakpoint, cfg.UI.MobileBreakpoint)
	assert.Equal(t, "monokai", cfg.UI.CodeStyle)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[ui\ntheme = ")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATDASH_THEME", "dark")
	t.Setenv("CHATDASH_LOG_LEVEL", "DEBUG")
	t.Setenv("CHATDASH_LOG_FILE", "/tmp/chatdash-test.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/chatdash-test.log", cfg.LogPath())
}

// =============================================================================
// VALIDATE
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, ErrInvalidTheme},
		{"breakpoint too small", func(c *Config) { c.UI.MobileBreakpoint = 10 }, ErrInvalidBreakpoint},
		{"breakpoint too large", func(c *Config) { c.UI.MobileBreakpoint = 1000 }, ErrInvalidBreakpoint},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, ErrInvalidLogLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_EmptyCodeStyle(t *testing.T) {
	cfg := Default()
	cfg.UI.CodeStyle = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CodeStyle")
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

// =============================================================================
// SAVE
// =============================================================================

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = ThemeLight
	cfg.UI.SidebarCollapsed = true
	cfg.UI.ShowHistory = false
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveFS_LoadFS_MemFs(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()
	path := "/cfg/config.toml"

	cfg := Default()
	cfg.UI.CodeStyle = "dracula"
	cfg.UI.MobileBreakpoint = 80
	require.NoError(t, SaveFS(fsys, cfg, path))

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# chatdash configuration file")
	assert.Contains(t, string(data), `code_style = "dracula"`)

	loaded, err := LoadFS(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFS_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFS(afero.NewMemMapFs(), "/nowhere/config.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFS_InvalidValues(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/config.toml",
		[]byte("[ui]\ntheme = \"neon\"\nmobile_breakpoint = 5\n"), 0o600))

	_, err := LoadFS(fsys, "/config.toml")
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.ErrorIs(t, err, ErrInvalidBreakpoint)
}

func TestUpdatePreferencesFS_KeepsOverridesOut(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()
	path := "/config.toml"
	require.NoError(t, afero.WriteFile(fsys, path,
		[]byte("[ui]\ncode_style = \"dracula\"\n\n[log]\nlevel = \"error\"\n"), 0o600))

	t.Setenv("CHATDASH_THEME", "dark")
	t.Setenv("CHATDASH_LOG_LEVEL", "debug")
	t.Setenv("CHATDASH_LOG_FILE", "/tmp/elsewhere.log")
	live, err := LoadFS(fsys, path)
	require.NoError(t, err)
	require.Equal(t, ThemeDark, live.UI.Theme)

	require.NoError(t, UpdatePreferencesFS(fsys, path, func(ui *UIConfig) { ui.SidebarCollapsed = true }))

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "elsewhere.log")

	clearEnv(t)
	stored, err := LoadFS(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, ThemeAuto, stored.UI.Theme)
	assert.Equal(t, "error", stored.Log.Level)
	assert.Empty(t, stored.Log.File)
	assert.Equal(t, "dracula", stored.UI.CodeStyle)
	assert.True(t, stored.UI.SidebarCollapsed)
	assert.True(t, stored.UI.ShowHistory)
}

func TestUpdatePreferencesFS_CreatesFile(t *testing.T) {
	clearEnv(t)
	fsys := afero.NewMemMapFs()

	require.NoError(t, UpdatePreferencesFS(fsys, "/cfg/config.toml", func(ui *UIConfig) { ui.Theme = ThemeLight }))

	stored, err := LoadFS(fsys, "/cfg/config.toml")
	require.NoError(t, err)
	want := Default()
	want.UI.Theme = ThemeLight
	assert.Equal(t, want, stored)
}

func TestUpdatePreferencesFS_MalformedFileUntouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/config.toml", []byte("[ui\n"), 0o600))

	err := UpdatePreferencesFS(fsys, "/config.toml", func(ui *UIConfig) { ui.ShowHistory = false })
	require.Error(t, err)
	data, err := afero.ReadFile(fsys, "/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "[ui\n", string(data))
}

func TestClone_IsIndependent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.UI.Theme = ThemeDark
	assert.Equal(t, ThemeAuto, cfg.UI.Theme)
}

// =============================================================================
// WATCH
// =============================================================================

func TestWatch_ReloadsOnSave(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(Default(), path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, logging.Discard(), func(c *Config) { changes <- c })
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	updated := Default()
	updated.UI.Theme = ThemeDark
	require.NoError(t, Save(updated, path))

	select {
	case got := <-changes:
		assert.Equal(t, ThemeDark, got.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}
