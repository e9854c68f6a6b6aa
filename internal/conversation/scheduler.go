// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"sync"
	"time"
)

// =============================================================================
// DEFERRED TASKS
// =============================================================================

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel stops the callback from running. It reports whether the call
	// prevented the callback; false means it already ran or was cancelled.
	Cancel() bool
}

// Scheduler runs a callback once after a delay without blocking the caller.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

// =============================================================================
// WALL CLOCK
// =============================================================================

// ClockScheduler schedules callbacks on the runtime timer.
// Callbacks run on their own goroutine.
type ClockScheduler struct{}

// Schedule implements Scheduler using time.AfterFunc.
func (ClockScheduler) Schedule(d time.Duration, fn func()) Task {
	return clockTask{timer: time.AfterFunc(d, fn)}
}

type clockTask struct {
	timer *time.Timer
}

func (t clockTask) Cancel() bool {
	return t.timer.Stop()
}

// =============================================================================
// MANUAL CLOCK
// =============================================================================

// ManualScheduler is a deterministic Scheduler whose time only moves when
// Advance is called. Due callbacks run synchronously on the caller of Advance,
// in deadline order (ties broken by scheduling order).
//
// IMPORTANT: Use as a pointer; the zero value is ready to use.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	next  int
	tasks []*manualTask
}

// NewManualScheduler creates a manual scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTask struct {
	owner *ManualScheduler
	due   time.Duration
	order int
	fn    func()
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(d time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTask{owner: s, due: s.now + d, order: s.next, fn: fn}
	s.next++
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel removes the task if it has not fired yet.
func (t *manualTask) Cancel() bool {
	s := t.owner
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(t)
}

// Advance moves the clock forward by d and runs every callback that became
// due. It returns the number of callbacks that ran.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	fired := 0
	for {
		s.mu.Lock()
		t := s.earliestLocked()
		if t == nil || t.due > target {
			s.now = target
			s.mu.Unlock()
			return fired
		}
		s.removeLocked(t)
		s.now = t.due
		s.mu.Unlock()

		// Run outside the lock so the callback may schedule or cancel.
		t.fn()
		fired++
	}
}

// Pending returns the number of callbacks that have not fired or been cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Now returns the elapsed manual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) earliestLocked() *manualTask {
	var best *manualTask
	for _, t := range s.tasks {
		if best == nil || t.due < best.due || (t.due == best.due && t.order < best.order) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) removeLocked(target *manualTask) bool {
	for i, t := range s.tasks {
		if t == target {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
