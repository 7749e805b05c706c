package paginate

import (
	"sync"
	"time"
)

// DefaultAdvanceDelay is how long a proximity signal waits before firing.
const DefaultAdvanceDelay = 300 * time.Millisecond

// Trigger debounces proximity signals. At most one fire is pending at a
// time; signals that arrive while one is pending are coalesced into it.
type Trigger struct {
	mu      sync.Mutex
	delay   time.Duration
	fire    func()
	timer   *time.Timer
	gen     uint64
	pending bool
	stopped bool
}

// NewTrigger creates a Trigger that calls fire delay after a signal.
func NewTrigger(delay time.Duration, fire func()) *Trigger {
	if delay < 0 {
		delay = 0
	}
	return &Trigger{delay: delay, fire: fire}
}

// Signal schedules a fire. It returns false when the signal was coalesced
// into an already pending fire or the trigger is stopped.
func (t *Trigger) Signal() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || t.pending {
		return false
	}
	t.pending = true
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(t.delay, func() { t.run(gen) })
	return true
}

func (t *Trigger) run(gen uint64) {
	t.mu.Lock()
	if t.stopped || !t.pending || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.fire()

	t.mu.Lock()
	if gen == t.gen {
		t.pending = false
	}
	t.mu.Unlock()
}

// Pending reports whether a fire is scheduled.
func (t *Trigger) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Cancel drops a pending fire without stopping the trigger.
func (t *Trigger) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Stop cancels any pending fire and rejects further signals.
func (t *Trigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.cancelLocked()
}

func (t *Trigger) cancelLocked() {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	t.pending = false
}
