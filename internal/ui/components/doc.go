// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for chatdash.
//
// Each component renders one region of the dashboard from a *styles.Theme:
//
//   - Sidebar: navigation, plan upsell, log out
//   - Header: title bar with search box and theme indicator
//   - HistoryPanel: recent conversations
//   - MessageList: conversation rows with feedback and copy controls
//   - CodeDisplay: tabbed, highlighted code with a copy action
//   - Thinking: the pending-reply indicator
//   - TemplatesPage and RenderPlaceholder: non-chat pages
//   - StatusBar: status line with key hints
//
// Components hold only view state. Conversation state lives in the
// conversation controller and is passed in at render time.
package components
