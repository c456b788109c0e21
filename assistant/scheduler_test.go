package assistant

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler(time.Millisecond)

	var fired int32
	task := s.Schedule(func() { atomic.AddInt32(&fired, 1) })

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task never fired")
	}

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expected exactly one firing, got %d", got)
	}
}

func TestSchedulerCancelPreventsFiring(t *testing.T) {
	s := NewScheduler(50 * time.Millisecond)

	var fired int32
	task := s.Schedule(func() { atomic.AddInt32(&fired, 1) })

	if !task.Cancel() {
		t.Fatal("expected cancel to stop the pending task")
	}

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("done channel not closed after cancel")
	}

	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("cancelled task fired %d times", got)
	}
}

func TestSchedulerZeroDelay(t *testing.T) {
	s := NewScheduler(0)

	task := s.Schedule(func() {})
	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("zero-delay task never fired")
	}
}
