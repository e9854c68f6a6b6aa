// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"github.com/jeranaias/chatdash/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatdash configuration.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig contains presentation preferences.
type UIConfig struct {
	// Theme is "auto", "dark" or "light". "auto" follows the terminal background.
	Theme string `toml:"theme" validate:"theme"`
	// SidebarCollapsed shows only icons in the navigation sidebar.
	SidebarCollapsed bool `toml:"sidebar_collapsed"`
	// ShowHistory shows the history panel on wide terminals.
	ShowHistory bool `toml:"show_history"`
	// MobileBreakpoint is the terminal width (columns) below which side
	// panels are hidden.
	MobileBreakpoint int `toml:"mobile_breakpoint" validate:"min=40,max=400"`
	// CodeStyle is the chroma style used by the code viewer.
	CodeStyle string `toml:"code_style" validate:"required"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" validate:"log_level"`
	// File is where TUI sessions write logs. Empty = ~/.chatdash/logs/chatdash.log
	File string `toml:"file"`
}

// Theme names.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Limits for the responsive breakpoint.
const (
	MinBreakpoint     = 40
	MaxBreakpoint     = 400
	DefaultBreakpoint = 100
)

// Sentinel errors returned (wrapped) by Validate.
var (
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrInvalidBreakpoint = errors.New("invalid mobile breakpoint")
	ErrInvalidLogLevel   = errors.New("invalid log level")
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:            ThemeAuto,
			SidebarCollapsed: false,
			ShowHistory:      true,
			MobileBreakpoint: DefaultBreakpoint,
			CodeStyle:        "monokai",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the configuration directory (~/.chatdash).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".chatdash"), nil
}

// DefaultPath returns ~/.chatdash/config.toml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the configured log file or the default location.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "logs", "chatdash.log")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration at path on the OS filesystem.
func Load(path string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads the configuration at path on fsys. A missing file yields
// defaults. Environment overrides are applied and the result is validated.
func LoadFS(fsys afero.Fs, path string) (*Config, error) {
	cfg, err := readFS(fsys, path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// readFS decodes the file at path over the defaults, with no environment
// overrides. A missing file yields defaults.
func readFS(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies CHATDASH_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	// CHATDASH_THEME
	if theme := os.Getenv("CHATDASH_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	// CHATDASH_LOG_LEVEL
	if level := os.Getenv("CHATDASH_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	// CHATDASH_LOG_FILE
	if file := os.Getenv("CHATDASH_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

// SetDefaults fills zero values left by a partial config file.
func (c *Config) SetDefaults() {
	d := Default()
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.UI.MobileBreakpoint == 0 {
		c.UI.MobileBreakpoint = d.UI.MobileBreakpoint
	}
	if c.UI.CodeStyle == "" {
		c.UI.CodeStyle = d.UI.CodeStyle
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// =============================================================================
// VALIDATION
// =============================================================================

// structValidator checks the validate tags on Config.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case ThemeAuto, ThemeDark, ThemeLight:
			return true
		}
		return false
	})
	v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "debug", "info", "warn", "warning", "error":
			return true
		}
		return false
	})
	return v
}

// Validate checks field values. The returned error wraps one of the
// package's sentinel errors; several problems are joined.
func (c *Config) Validate() error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.StructNamespace() {
		case "Config.UI.Theme":
			errs = append(errs, fmt.Errorf("ui.theme %q (want auto, dark or light): %w", c.UI.Theme, ErrInvalidTheme))
		case "Config.UI.MobileBreakpoint":
			errs = append(errs, fmt.Errorf("ui.mobile_breakpoint %d (want %d-%d): %w",
				c.UI.MobileBreakpoint, MinBreakpoint, MaxBreakpoint, ErrInvalidBreakpoint))
		case "Config.Log.Level":
			errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidLogLevel))
		default:
			errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.Join(errs...)
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes cfg to path on the OS filesystem.
func Save(cfg *Config, path string) error {
	return SaveFS(afero.NewOsFs(), cfg, path)
}

// SaveFS writes cfg to path on fsys as TOML, atomically and owner-readable only.
func SaveFS(fsys afero.Fs, cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# chatdash configuration file\n")
	buf.WriteString("# Generated by chatdash - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := util.WriteFileAtomic(fsys, path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// UpdatePreferences edits the UI section of the file at path on the OS
// filesystem.
func UpdatePreferences(path string, update func(*UIConfig)) error {
	return UpdatePreferencesFS(afero.NewOsFs(), path, update)
}

// UpdatePreferencesFS reads the file at path without environment overrides,
// applies update to its UI section and writes it back. Values that only
// exist in the running process (env or flag overrides) are never persisted.
func UpdatePreferencesFS(fsys afero.Fs, path string, update func(*UIConfig)) error {
	stored, err := readFS(fsys, path)
	if err != nil {
		return err
	}
	update(&stored.UI)
	return SaveFS(fsys, stored, path)
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
