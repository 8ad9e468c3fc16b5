package core

import (
	"sort"
	"sync"
	"time"

	pcore "mad-life/pkg/core"
)

// FrameScheduler runs callbacks from a host frame loop. Callbacks become due
// after their delay has elapsed on the injected clock and run when the loop
// calls Advance. It never runs callbacks on its own goroutine.
type FrameScheduler struct {
	mu    sync.Mutex
	now   func() time.Time
	seq   uint64
	tasks []*frameTask
}

type frameTask struct {
	seq uint64
	due time.Time
	fn  func()
}

// NewFrameScheduler constructs a scheduler reading time from now. A nil clock
// uses time.Now.
func NewFrameScheduler(now func() time.Time) *FrameScheduler {
	if now == nil {
		now = time.Now
	}
	return &FrameScheduler{now: now}
}

// After queues fn to run once d has elapsed.
func (f *FrameScheduler) After(d time.Duration, fn func()) pcore.Cancel {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &frameTask{seq: f.seq, due: f.now().Add(d), fn: fn}
	f.tasks = append(f.tasks, t)
	return func() { f.remove(t) }
}

// Advance runs every callback due at or before now, in due order. Callbacks
// scheduled while advancing run on a later call.
func (f *FrameScheduler) Advance(now time.Time) int {
	f.mu.Lock()
	var due []*frameTask
	kept := f.tasks[:0]
	for _, t := range f.tasks {
		if !t.due.After(now) {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	f.tasks = kept
	f.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Update advances to the scheduler's clock. It is meant to be called once per
// frame.
func (f *FrameScheduler) Update() int { return f.Advance(f.now()) }

// RunNext runs the earliest pending callback regardless of the clock. It
// reports false when nothing is pending.
func (f *FrameScheduler) RunNext() bool {
	f.mu.Lock()
	if len(f.tasks) == 0 {
		f.mu.Unlock()
		return false
	}
	best := 0
	for i, t := range f.tasks {
		b := f.tasks[best]
		if t.due.Before(b.due) || (t.due.Equal(b.due) && t.seq < b.seq) {
			best = i
		}
	}
	t := f.tasks[best]
	f.tasks = append(f.tasks[:best], f.tasks[best+1:]...)
	f.mu.Unlock()

	t.fn()
	return true
}

// Pending returns the number of queued callbacks.
func (f *FrameScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

func (f *FrameScheduler) remove(target *frameTask) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t == target {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return
		}
	}
}

// TimerScheduler runs callbacks on runtime timers.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[*timerEntry]struct{}
	wg     sync.WaitGroup
	closed bool
}

type timerEntry struct {
	t *time.Timer
}

// NewTimerScheduler constructs an empty TimerScheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[*timerEntry]struct{})}
}

// After runs fn on its own goroutine once d has elapsed. After Close it
// returns a no-op Cancel without scheduling anything.
func (s *TimerScheduler) After(d time.Duration, fn func()) pcore.Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}
	e := &timerEntry{}
	s.wg.Add(1)
	e.t = time.AfterFunc(d, func() {
		defer s.wg.Done()
		if !s.forget(e) {
			return
		}
		fn()
	})
	s.timers[e] = struct{}{}
	return func() { s.stop(e) }
}

// Pending returns the number of timers that have neither fired nor been
// canceled.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close stops every pending timer and waits for running callbacks to return.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for e := range s.timers {
		if e.t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, e)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// forget removes e and reports whether it was still registered.
func (s *TimerScheduler) forget(e *timerEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[e]; !ok {
		return false
	}
	delete(s.timers, e)
	return true
}

func (s *TimerScheduler) stop(e *timerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[e]; !ok {
		return
	}
	delete(s.timers, e)
	if e.t.Stop() {
		s.wg.Done()
	}
}
