package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	scheduler := NewScheduler(clock)

	var ran []string
	scheduler.After(100*time.Millisecond, func() { ran = append(ran, "a") })
	scheduler.After(200*time.Millisecond, func() { ran = append(ran, "b") })

	assert.Equal(t, 0, scheduler.Advance())

	clock.Add(150 * time.Millisecond)
	assert.Equal(t, 1, scheduler.Advance())
	assert.Equal(t, []string{"a"}, ran)

	clock.Add(50 * time.Millisecond)
	assert.Equal(t, 1, scheduler.Advance())
	assert.Equal(t, []string{"a", "b"}, ran)
	assert.Equal(t, 0, scheduler.tasks.Len())
}

func TestSchedulerCancel(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	scheduler := NewScheduler(clock)

	ran := false
	task := scheduler.After(time.Millisecond, func() { ran = true })
	assert.True(t, task.Pending())

	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())
	assert.False(t, task.Pending())

	clock.Add(time.Second)
	assert.Equal(t, 0, scheduler.Advance())
	assert.False(t, ran)
}

func TestSchedulerCancelAfterRun(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	scheduler := NewScheduler(clock)

	task := scheduler.After(0, func() {})
	assert.Equal(t, 1, scheduler.Advance())
	assert.False(t, task.Cancel())
	assert.False(t, task.Pending())

	var nilTask *Task
	assert.False(t, nilTask.Cancel())
}

func TestSchedulerKeepsDueOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	scheduler := NewScheduler(clock)

	first := scheduler.After(time.Second, func() {})
	second := scheduler.After(time.Millisecond, func() {})

	assert.False(t, second.Due().Before(first.Due()))
}

func TestSchedulerClear(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	scheduler := NewScheduler(clock)

	task := scheduler.After(time.Millisecond, func() { t.Fatal("cleared task ran") })
	scheduler.Clear()
	assert.Equal(t, 0, scheduler.tasks.Len())

	clock.Add(time.Second)
	scheduler.Advance()
	assert.False(t, task.Pending())
}
