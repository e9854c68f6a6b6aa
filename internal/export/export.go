// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/chatdash/internal/model"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders a conversation log in one output format.
type Exporter interface {
	// Export converts the messages to the target format.
	Export(msgs []model.Message) ([]byte, error)

	// FileExtension returns the conventional file extension (e.g. ".md").
	FileExtension() string

	// MimeType returns the MIME type of the output.
	MimeType() string
}

// Format names accepted by New.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the supported format names.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON}

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrNoMessages    = errors.New("conversation has no messages")
)

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// IncludeTimestamps adds the relative message age to each header.
	IncludeTimestamps bool

	// Now is the reference time for relative timestamps and the export date.
	// Default: time.Now
	Now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		IncludeTimestamps: true,
		Now:               time.Now,
	}
}

func (o *Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// New returns the exporter for format. "md" is accepted for markdown.
func New(format string, opts *Options) (Exporter, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return NewTextExporter(opts), nil
	case FormatMarkdown, "md":
		return NewMarkdownExporter(opts), nil
	case FormatJSON:
		return NewJSONExporter(opts), nil
	default:
		return nil, fmt.Errorf("%q (want %s): %w", format, strings.Join(Formats, ", "), ErrUnknownFormat)
	}
}
