package ui

import (
	"regexp"
	"testing"

	"github.com/GLINCKER/glinview/internal/glinr"
	"github.com/GLINCKER/glinview/internal/logparse"
)

func testModelWithLines(lines []string) Model {
	m := New(Options{})
	m.width = 120
	m.height = 40
	m.initLogState()
	m.initLogViewport()
	m.snapshot.Entries = logparse.ParseLines(lines)
	return m
}

func TestFindSearchMatches(t *testing.T) {
	m := testModelWithLines([]string{
		"2025-01-02T10:00:00Z INFO: starting deploy",
		"2025-01-02T10:00:01Z ERROR: deploy failed",
		"2025-01-02T10:00:02Z INFO: retrying",
	})
	m.logState.searchRegex = regexp.MustCompile("(?i)deploy")

	m.findSearchMatches()

	if len(m.logState.searchMatches) != 2 {
		t.Fatalf("got %d matches, want 2", len(m.logState.searchMatches))
	}
	if m.logState.searchMatches[0] != 0 || m.logState.searchMatches[1] != 1 {
		t.Fatalf("matches = %v, want [0 1]", m.logState.searchMatches)
	}
}

func TestSearchMatchNavigationWraps(t *testing.T) {
	m := testModelWithLines([]string{"a error", "b", "c error"})
	m.logState.searchRegex = regexp.MustCompile("(?i)error")
	m.findSearchMatches()

	if len(m.logState.searchMatches) != 2 {
		t.Fatalf("got %d matches, want 2", len(m.logState.searchMatches))
	}

	m.logState.searchMatchIdx = 0
	m.nextSearchMatch()
	if m.logState.searchMatchIdx != 1 {
		t.Fatalf("after next, idx = %d, want 1", m.logState.searchMatchIdx)
	}
	m.nextSearchMatch()
	if m.logState.searchMatchIdx != 0 {
		t.Fatalf("after wrap, idx = %d, want 0", m.logState.searchMatchIdx)
	}
	m.previousSearchMatch()
	if m.logState.searchMatchIdx != 1 {
		t.Fatalf("after previous wrap, idx = %d, want 1", m.logState.searchMatchIdx)
	}
}

func TestClearSearch(t *testing.T) {
	m := testModelWithLines([]string{"error here"})
	m.logState.searchRegex = regexp.MustCompile("error")
	m.logState.searchQuery = "error"
	m.findSearchMatches()

	m.clearSearch()

	if m.logState.searchRegex != nil || m.logState.searchQuery != "" {
		t.Fatalf("clearSearch left regex/query set")
	}
	if m.logState.searchMatches != nil {
		t.Fatalf("clearSearch left matches: %v", m.logState.searchMatches)
	}
}

func TestLogTitlePrefersSourceName(t *testing.T) {
	m := testModelWithLines(nil)
	m.snapshot.Paths = []glinr.LogPath{
		{Path: "/var/log/glinrdock/deploy.log", Name: "deploy"},
	}
	m.snapshot.SelectedPath = "/var/log/glinrdock/deploy.log"
	m.snapshot.LineCount = 200

	if got := m.logTitle(); got != "deploy (200 lines)" {
		t.Fatalf("logTitle = %q, want %q", got, "deploy (200 lines)")
	}
}

func TestLogTitleWithoutSelection(t *testing.T) {
	m := testModelWithLines(nil)
	if got := m.logTitle(); got != "Logs" {
		t.Fatalf("logTitle = %q, want Logs", got)
	}
}
