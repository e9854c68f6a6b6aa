// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages.
//
// # Key Types
//
//   - Message: Single immutable chat entry with identity, role, content and timestamp
//   - Role: Tagged message role (user or assistant)
//
// Messages are plain values. The conversation package owns the ordered log and
// is the only place that creates them during a session:
//
//	msg := model.NewMessage(1, model.RoleUser, "Hello!", time.Now())
//	if msg.Role.IsAssistant() {
//	    // render feedback controls
//	}
package model
