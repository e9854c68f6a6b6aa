// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat page of the dashboard.

The page owns a conversation.Controller and renders its snapshots. The
controller notifies from its own goroutine (the reply timer), so
notifications are bridged into the Bubble Tea loop through a Notifier: a
one-slot channel that coalesces bursts. A blocking tea.Cmd waits on it and
delivers ConversationChangedMsg, after which the page re-reads the snapshot
and re-arms the wait.

# Keys

	enter      send the input (ignored while a reply is pending)
	alt+enter  insert a newline
	ctrl+r     regenerate the last reply
	tab        next code tab, shift+tab previous
	ctrl+y     copy the active code tab
	alt+u      thumbs up on the last reply, alt+d thumbs down
	alt+c      copy the last reply
	pgup/pgdn  scroll

Call Close when the page goes away; it cancels any pending reply.
*/
package chat
