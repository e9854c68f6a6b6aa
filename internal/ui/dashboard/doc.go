// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard provides the root Bubble Tea model of chatdash.
//
// It lays out the sidebar, header, active page, history panel and status
// bar, switches pages, and persists UI preferences (theme, sidebar,
// history) through a saver. Below the configured mobile breakpoint the side
// panels are hidden and Ctrl+B opens the sidebar as an overlay instead.
package dashboard
