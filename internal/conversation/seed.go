// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"time"

	"github.com/jeranaias/chatdash/internal/model"
)

// Fixed reply behaviour of the simulated assistant.
const (
	// ReplyLatency is how long the simulated assistant takes to answer.
	ReplyLatency = 1500 * time.Millisecond

	// ReplyText is appended after a Submit.
	ReplyText = "I understand you need help with that. Let me provide you with a solution..."

	// RegeneratedReplyText is appended after a Regenerate.
	RegeneratedReplyText = "Let me provide you with an alternative approach to solve this problem..."
)

// Entry describes one message of a seed log.
type Entry struct {
	Role    model.Role
	Content string
	Age     time.Duration // how long before controller creation it was sent
}

// DefaultSeed returns the two-message log every chat view starts with.
func DefaultSeed() []Entry {
	return []Entry{
		{
			Role:    model.RoleUser,
			Content: "I need help creating a simple HTML form with cancel and send buttons. Can you help me with the code?",
			Age:     2 * time.Minute,
		},
		{
			Role:    model.RoleAssistant,
			Content: "I'll help you create a simple HTML form with cancel and send buttons. Here's a complete example with HTML, CSS, and JavaScript:",
			Age:     2 * time.Minute,
		},
	}
}
