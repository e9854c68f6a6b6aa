// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package conversation owns the chat log and the simulated assistant.

A Controller holds the ordered message log and a pending flag. It exposes two
mutations, Submit and Regenerate, and read accessors for the presentation layer.
Nothing else in the application writes to the log.

# State Machine

	Idle --Submit/Regenerate--> AwaitingReply --ReplyLatency--> Idle

The transition back to Idle appends the simulated assistant reply. While a reply
is outstanding further Submit and Regenerate calls are rejected, which keeps at
most one deferred task alive and makes reply order deterministic.

# Scheduling

Replies are armed through a Scheduler that returns a cancellable Task. The
default ClockScheduler uses time.AfterFunc; ManualScheduler moves time only when
told to and is what the tests use:

	sched := conversation.NewManualScheduler()
	c := conversation.New(conversation.WithScheduler(sched))
	c.Submit("Hello")
	sched.Advance(conversation.ReplyLatency)

Close cancels the outstanding task. A callback that races with Close finds the
controller closed and does nothing.
*/
package conversation
