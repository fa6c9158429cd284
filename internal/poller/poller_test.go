package poller

import (
	"testing"
	"time"
)

const testInterval = 20 * time.Millisecond

// waitForRequest waits up to several intervals for a request.
func waitForRequest(t *testing.T, p *Poller) (Request, bool) {
	t.Helper()
	select {
	case req := <-p.Requests():
		return req, true
	case <-time.After(10 * testInterval):
		return Request{}, false
	}
}

// expectQuiet asserts no request arrives for several intervals.
func expectQuiet(t *testing.T, p *Poller) {
	t.Helper()
	select {
	case req := <-p.Requests():
		t.Fatalf("unexpected request %+v, want none", req)
	case <-time.After(5 * testInterval):
	}
}

func TestPoller_IdleWithoutPath(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	defer p.Close()

	p.SetEnabled(true)
	if p.Polling() {
		t.Fatal("Polling() = true with no path configured")
	}
	expectQuiet(t, p)
}

func TestPoller_IdleWithoutEnable(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	defer p.Close()

	p.Configure("/var/log/glinrdock.log", 100)
	if p.Polling() {
		t.Fatal("Polling() = true with auto-refresh disabled")
	}
	expectQuiet(t, p)
}

func TestPoller_EmitsWhilePolling(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	defer p.Close()

	p.Configure("/var/log/glinrdock.log", 200)
	p.SetEnabled(true)
	if !p.Polling() {
		t.Fatal("Polling() = false with path configured and enabled")
	}

	req, ok := waitForRequest(t, p)
	if !ok {
		t.Fatal("no request emitted while polling")
	}
	if req.Path != "/var/log/glinrdock.log" || req.Lines != 200 {
		t.Fatalf("request = %+v, want configured params", req)
	}

	// The timer keeps firing.
	if _, ok := waitForRequest(t, p); !ok {
		t.Fatal("no second request emitted")
	}
}

func TestPoller_ReconfigureSwitchesParams(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	defer p.Close()

	p.Configure("/a", 100)
	p.SetEnabled(true)
	if _, ok := waitForRequest(t, p); !ok {
		t.Fatal("no request for initial params")
	}

	p.Configure("/b", 500)

	// Drain anything emitted with the old params before the switch, then
	// every later request must carry the new pair.
	deadline := time.After(10 * testInterval)
	for {
		select {
		case req := <-p.Requests():
			if req.Path == "/b" {
				if req.Lines != 500 {
					t.Fatalf("request = %+v, want lines 500", req)
				}
				return
			}
		case <-deadline:
			t.Fatal("no request with reconfigured params")
		}
	}
}

func TestPoller_ClearingPathStopsTimer(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	defer p.Close()

	p.Configure("/a", 100)
	p.SetEnabled(true)
	if _, ok := waitForRequest(t, p); !ok {
		t.Fatal("no request while polling")
	}

	p.Configure("", 100)
	if p.Polling() {
		t.Fatal("Polling() = true after path cleared")
	}
	drain(p)
	expectQuiet(t, p)
}

func TestPoller_DisableStopsTimer(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	defer p.Close()

	p.Configure("/a", 100)
	p.SetEnabled(true)
	if _, ok := waitForRequest(t, p); !ok {
		t.Fatal("no request while polling")
	}

	p.SetEnabled(false)
	if p.Polling() {
		t.Fatal("Polling() = true after disable")
	}
	drain(p)
	expectQuiet(t, p)

	// Re-enabling resumes from Idle.
	p.SetEnabled(true)
	if _, ok := waitForRequest(t, p); !ok {
		t.Fatal("no request after re-enable")
	}
}

func TestPoller_CloseIsTerminalAndIdempotent(t *testing.T) {
	t.Parallel()

	p := New(testInterval)
	p.Configure("/a", 100)
	p.SetEnabled(true)
	if _, ok := waitForRequest(t, p); !ok {
		t.Fatal("no request while polling")
	}

	p.Close()
	p.Close()
	if p.Polling() {
		t.Fatal("Polling() = true after Close")
	}

	// Configuring a closed poller must not restart it.
	p.Configure("/b", 200)
	p.SetEnabled(true)
	if p.Polling() {
		t.Fatal("closed poller restarted")
	}
	drain(p)
	expectQuiet(t, p)
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.interval != DefaultInterval {
		t.Fatalf("interval = %v, want %v", p.interval, DefaultInterval)
	}
}

// drain empties any tick that fired before a stop took effect.
func drain(p *Poller) {
	// One extra interval lets a goroutine mid-send finish before draining.
	time.Sleep(2 * testInterval)
	for {
		select {
		case <-p.Requests():
		default:
			return
		}
	}
}
