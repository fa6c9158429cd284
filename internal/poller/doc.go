// Package poller implements the auto-refresh timer for a log viewer.
//
// The Poller is a two-state machine. It is Idle until auto-refresh is
// enabled AND a log path is configured; while Polling it emits a Request
// carrying the configured (path, lines) pair at a fixed cadence. Disabling
// auto-refresh or clearing the path returns it to Idle.
//
// The interval is measured between tick registrations, not fetch
// completions, so a slow fetch can overlap the next tick; the viewer
// store's stale-response guard makes that safe. Any reconfiguration while
// polling replaces the timer goroutine outright (clear-then-set under the
// mutex), which both guarantees at most one live timer per instance and
// restarts the interval so no tick fires immediately with superseded
// parameters.
//
// Each viewer constructs its own Poller and closes it on teardown; there is
// no ambient shared timer state.
package poller
