// Package viewer provides thread-safe state management for one log viewer.
//
// # Overview
//
// The Store is the coordination point between asynchronous log fetches and
// the UI: it owns the log source registry, the current selection and line
// count, and the entry sequence from the most recent successful fetch.
// Fetches run in their own goroutines and deliver a Result; the Store
// decides whether that result still applies.
//
// # Stale-Response Guard
//
// Multiple fetches may be in flight at once (a manual refresh overlapping a
// timer-triggered one, or a selection change racing a response). Every
// Result carries the (path, line count) pair of the request that produced
// it, and Apply discards any result whose pair no longer matches the
// current selection. The guard lives here, at the single consumption point,
// rather than being scattered across call sites.
//
// # Error Semantics
//
// Failed fetches never destroy data. The previous entry sequence stays
// visible, the error is recorded for the status bar, and a consecutive
// failure count feeds the offline indicator. Path-list failures and
// log-fetch failures are tracked independently, so a broken registry call
// does not blank a working log pane and vice versa.
//
// # Loading Semantics
//
// Snapshot.Loading is true only while a fetch is in flight before the first
// success. After that, refreshes are background operations and the UI shows
// the existing entries with at most a subtle in-place indicator.
//
// The Store uses the same RWMutex snapshot pattern throughout: Update-style
// methods take the write lock, Snapshot returns a defensive copy.
package viewer
