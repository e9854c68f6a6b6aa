// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/chatdash/internal/model"
)

// TextExporter writes one block per message: a "[Badge] age" header line,
// then the content. Blocks are separated by a blank line.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a plain text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// Export converts the messages to plain text. An empty log yields no output.
func (e *TextExporter) Export(msgs []model.Message) ([]byte, error) {
	now := e.options.now()

	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("[" + msg.Role.DisplayName() + "]")
		if e.options.IncludeTimestamps {
			sb.WriteString(" " + msg.Timestamp(now))
		}
		sb.WriteString("\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for plain text.
func (e *TextExporter) MimeType() string {
	return "text/plain"
}
