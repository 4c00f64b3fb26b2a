package game

import (
	"sync"
	"time"

	"github.com/gammazero/deque"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

var SystemClock Clock = systemClock{}

// ManualClock only moves when told to. Simulations and tests drive it.
type ManualClock struct {
	lock sync.Mutex
	now  time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (clock *ManualClock) Now() time.Time {
	clock.lock.Lock()
	defer clock.lock.Unlock()
	return clock.now
}

func (clock *ManualClock) Add(d time.Duration) {
	clock.lock.Lock()
	defer clock.lock.Unlock()
	clock.now = clock.now.Add(d)
}

// Task is a handle to a deferred action
type Task struct {
	due       time.Time
	run       func()
	cancelled bool
	done      bool
}

// Cancel prevents the task from running, and reports whether it was still pending
func (task *Task) Cancel() bool {
	if task == nil || task.done || task.cancelled {
		return false
	}
	task.cancelled = true
	return true
}

func (task *Task) Pending() bool {
	return task != nil && !task.done && !task.cancelled
}

func (task *Task) Due() time.Time {
	return task.due
}

// Scheduler runs deferred actions on the caller's goroutine when Advance is
// called. Tasks are kept in due order; a task is never due before one
// scheduled earlier.
type Scheduler struct {
	clock Clock
	tasks deque.Deque
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

func (scheduler *Scheduler) Clock() Clock {
	return scheduler.clock
}

func (scheduler *Scheduler) After(delay time.Duration, run func()) *Task {
	due := scheduler.clock.Now().Add(delay)
	if scheduler.tasks.Len() > 0 {
		if last := scheduler.tasks.Back().(*Task); due.Before(last.due) {
			due = last.due
		}
	}

	task := &Task{due: due, run: run}
	scheduler.tasks.PushBack(task)
	return task
}

// Advance runs every task that has come due and returns how many ran
func (scheduler *Scheduler) Advance() int {
	now := scheduler.clock.Now()
	ran := 0
	for scheduler.tasks.Len() > 0 {
		task := scheduler.tasks.Front().(*Task)
		if task.due.After(now) {
			break
		}
		scheduler.tasks.PopFront()

		if task.cancelled {
			continue
		}
		task.done = true
		task.run()
		ran++
	}
	return ran
}

// Clear cancels and drops every queued task
func (scheduler *Scheduler) Clear() {
	for scheduler.tasks.Len() > 0 {
		scheduler.tasks.PopFront().(*Task).Cancel()
	}
}
