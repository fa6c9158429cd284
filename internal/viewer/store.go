package viewer

import (
	"fmt"
	"sync"
	"time"

	"github.com/GLINCKER/glinview/internal/glinr"
	"github.com/GLINCKER/glinview/internal/logparse"
)

// DefaultLineCount is the requested line count before the user changes it.
const DefaultLineCount = 100

// LineCountChoices are the selectable line counts, in cycle order.
var LineCountChoices = []int{50, 100, 200, 500, 1000}

// Result carries the outcome of one log fetch together with the request
// parameters that produced it. The store applies a result only while those
// parameters still match the current selection.
type Result struct {
	Path  string
	Lines int
	Raw   []string
	Err   error
}

// Snapshot represents the latest viewer state available to the UI.
type Snapshot struct {
	Paths        []glinr.LogPath
	PathsErr     error
	SelectedPath string
	LineCount    int
	AutoRefresh  bool

	Entries             []logparse.Entry
	LastError           error
	Loaded              bool // at least one fetch has succeeded
	Fetching            bool
	ConsecutiveFailures int
	LastUpdated         time.Time
}

// Loading reports whether the UI should show a full loading state: a fetch
// is in flight and nothing has ever been loaded. Once entries exist,
// refreshes are background-only.
func (s Snapshot) Loading() bool {
	return s.Fetching && !s.Loaded
}

// IsOffline returns true when the API has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates updates to the viewer snapshot. Each mounted viewer owns
// its own Store; nothing is shared across instances.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// New returns a Store with the default line count and no selection.
func New() *Store {
	return &Store{snapshot: Snapshot{LineCount: DefaultLineCount}}
}

// SetPaths replaces the log source list wholesale. When err is non-nil the
// previous list is kept and the error recorded. On the first successful load
// with no current selection, the first entry is auto-selected and its path
// returned so the caller can trigger the initial fetch.
func (s *Store) SetPaths(paths []glinr.LogPath, err error) (selected string, autoSelected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.PathsErr = err
		return "", false
	}

	s.snapshot.Paths = clonePaths(paths)
	s.snapshot.PathsErr = nil
	if s.snapshot.SelectedPath == "" && len(paths) > 0 {
		s.snapshot.SelectedPath = paths[0].Path
		return paths[0].Path, true
	}
	return s.snapshot.SelectedPath, false
}

// SelectPath sets the current selection. Existing entries are deliberately
// kept visible until new data arrives.
func (s *Store) SelectPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedPath = path
}

// SetLineCount updates the requested line count. Values outside the
// enumerated choices are rejected.
func (s *Store) SetLineCount(n int) bool {
	for _, choice := range LineCountChoices {
		if n == choice {
			s.mu.Lock()
			s.snapshot.LineCount = n
			s.mu.Unlock()
			return true
		}
	}
	return false
}

// CycleLineCount advances to the next enumerated line count and returns it.
func (s *Store) CycleLineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, choice := range LineCountChoices {
		if s.snapshot.LineCount == choice {
			s.snapshot.LineCount = LineCountChoices[(i+1)%len(LineCountChoices)]
			return s.snapshot.LineCount
		}
	}
	s.snapshot.LineCount = DefaultLineCount
	return s.snapshot.LineCount
}

// SetAutoRefresh toggles the auto-refresh flag.
func (s *Store) SetAutoRefresh(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.AutoRefresh = enabled
}

// Params returns the current (path, line count) pair a fetch should use.
func (s *Store) Params() (path string, lines int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.SelectedPath, s.snapshot.LineCount
}

// BeginFetch marks a fetch as in flight.
func (s *Store) BeginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Fetching = true
}

// Apply consumes a fetch result. Stale results, those whose request
// parameters no longer match the current selection, are silently discarded
// and Apply reports false. On success the entry sequence is replaced with
// the parsed lines; on failure the previous entries are kept and the error
// recorded.
func (s *Store) Apply(res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.Path != s.snapshot.SelectedPath || res.Lines != s.snapshot.LineCount {
		return false
	}

	s.snapshot.Fetching = false
	s.snapshot.LastUpdated = time.Now()

	if res.Err != nil {
		s.snapshot.LastError = res.Err
		s.snapshot.ConsecutiveFailures++
		return true
	}

	s.snapshot.Entries = logparse.ParseLines(res.Raw)
	s.snapshot.LastError = nil
	s.snapshot.Loaded = true
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Paths = clonePaths(s.snapshot.Paths)
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	if s.snapshot.PathsErr != nil {
		snap.PathsErr = fmt.Errorf("%w", s.snapshot.PathsErr)
	}
	return snap
}

func clonePaths(paths []glinr.LogPath) []glinr.LogPath {
	if len(paths) == 0 {
		return nil
	}
	dup := make([]glinr.LogPath, len(paths))
	copy(dup, paths)
	return dup
}

func cloneEntries(entries []logparse.Entry) []logparse.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]logparse.Entry, len(entries))
	copy(dup, entries)
	return dup
}
