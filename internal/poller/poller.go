package poller

import (
	"sync"
	"time"
)

// DefaultInterval is the auto-refresh cadence.
const DefaultInterval = 5 * time.Second

// Request names the fetch the viewer should perform on a tick. The
// parameters are captured at configure time; the stale-response guard in
// the viewer store discards them if the selection has since moved on.
type Request struct {
	Path  string
	Lines int
}

// Poller owns the auto-refresh timer for a single viewer instance. It is
// Idle until both the enabled flag is set and a path is configured, and it
// returns to Idle when either goes away. Reconfiguring while polling
// replaces the running timer, restarting the interval from zero.
type Poller struct {
	interval time.Duration
	requests chan Request

	mu      sync.Mutex
	enabled bool
	path    string
	lines   int
	stop    chan struct{} // non-nil while the timer goroutine runs
	closed  bool
}

// New creates a Poller firing at the given interval. Non-positive intervals
// fall back to the default.
func New(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		interval: interval,
		requests: make(chan Request, 1),
	}
}

// Requests returns the channel refresh requests are delivered on.
func (p *Poller) Requests() <-chan Request {
	return p.requests
}

// SetEnabled toggles automatic refresh.
func (p *Poller) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.enabled == enabled {
		return
	}
	p.enabled = enabled
	p.reschedule()
}

// Configure sets the (path, lines) pair future ticks will request. An empty
// path drops the poller back to Idle. Changing either parameter while
// polling restarts the interval so no tick fires with stale parameters.
func (p *Poller) Configure(path string, lines int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.path == path && p.lines == lines {
		return
	}
	p.path = path
	p.lines = lines
	p.reschedule()
}

// Polling reports whether the timer is currently running.
func (p *Poller) Polling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// Close stops the poller permanently. It is idempotent; no request is
// emitted after Close returns and the pending channel has been drained.
func (p *Poller) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.enabled = false
	p.clearTimer()
}

// reschedule atomically replaces the running timer goroutine with one
// matching the current state: clear-then-set, never two timers at once.
// Caller holds mu.
func (p *Poller) reschedule() {
	p.clearTimer()
	if !p.enabled || p.path == "" {
		return
	}
	stop := make(chan struct{})
	p.stop = stop
	go p.run(stop, Request{Path: p.path, Lines: p.lines})
}

func (p *Poller) clearTimer() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

func (p *Poller) run(stop <-chan struct{}, req Request) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Non-blocking send: a consumer that has not drained the
			// previous request just misses this tick.
			select {
			case p.requests <- req:
			default:
			}
		}
	}
}
