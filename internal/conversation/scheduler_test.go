// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler_FiresInDeadlineOrder(t *testing.T) {
	s := NewManualScheduler()
	var order []string

	s.Schedule(30*time.Millisecond, func() { order = append(order, "c") })
	s.Schedule(10*time.Millisecond, func() { order = append(order, "a") })
	s.Schedule(20*time.Millisecond, func() { order = append(order, "b1") })
	s.Schedule(20*time.Millisecond, func() { order = append(order, "b2") })

	assert.Equal(t, 4, s.Pending())
	assert.Equal(t, 3, s.Advance(20*time.Millisecond))
	assert.Equal(t, []string{"a", "b1", "b2"}, order)
	assert.Equal(t, 20*time.Millisecond, s.Now())

	assert.Equal(t, 1, s.Advance(time.Second))
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, order)
	assert.Zero(t, s.Pending())
}

func TestManualScheduler_Cancel(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	task := s.Schedule(time.Second, func() { fired = true })

	require.True(t, task.Cancel())
	assert.False(t, task.Cancel(), "second cancel reports nothing stopped")
	assert.Zero(t, s.Advance(2*time.Second))
	assert.False(t, fired)
}

func TestManualScheduler_CancelAfterFire(t *testing.T) {
	s := NewManualScheduler()
	task := s.Schedule(time.Millisecond, func() {})
	s.Advance(time.Millisecond)
	assert.False(t, task.Cancel())
}

func TestManualScheduler_CallbackMaySchedule(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			s.Schedule(10*time.Millisecond, tick)
		}
	}
	s.Schedule(10*time.Millisecond, tick)

	assert.Equal(t, 3, s.Advance(time.Second))
	assert.Equal(t, 3, count)
}

func TestClockScheduler_Cancel(t *testing.T) {
	fired := make(chan struct{}, 1)
	task := ClockScheduler{}.Schedule(time.Hour, func() { fired <- struct{}{} })
	assert.True(t, task.Cancel())

	select {
	case <-fired:
		t.Fatal("cancelled task fired")
	default:
	}
}
