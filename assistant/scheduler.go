package assistant

import (
	"sync"
	"time"
)

// Scheduler runs turn continuations after a bounded delay, modeling the
// assistant's perceived "thinking" time before a reply appears.
type Scheduler struct {
	delay time.Duration
}

// NewScheduler returns a scheduler with the given reply delay. A zero
// delay fires continuations immediately, which tests rely on.
func NewScheduler(delay time.Duration) *Scheduler {
	return &Scheduler{delay: delay}
}

// Task is one scheduled continuation. It fires at most once.
type Task struct {
	timer *time.Timer
	done  chan struct{}
	once  sync.Once
}

// Schedule runs fn after the scheduler's delay. The returned task can be
// awaited via Done and stopped via Cancel; the session turn path never
// cancels, it always lets the delay complete.
func (s *Scheduler) Schedule(fn func()) *Task {
	t := &Task{done: make(chan struct{})}
	t.timer = time.AfterFunc(s.delay, func() {
		fn()
		t.once.Do(func() { close(t.done) })
	})
	return t
}

// Done is closed once the task has fired or been cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel stops the task if it has not fired yet. Returns true when the
// continuation was prevented from running.
func (t *Task) Cancel() bool {
	stopped := t.timer.Stop()
	if stopped {
		t.once.Do(func() { close(t.done) })
	}
	return stopped
}
