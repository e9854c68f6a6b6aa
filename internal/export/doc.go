// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders a conversation log for output outside the TUI.
//
// # Usage
//
//	exporter, err := export.New(export.FormatMarkdown, export.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	data, err := exporter.Export(ctrl.Messages())
package export
