package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestEveryThemeColorsAllLevels(t *testing.T) {
	levels := []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL", "PANIC"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, level := range levels {
			if th.LevelColors[level] == "" {
				t.Fatalf("theme %s has no color for level %s", name, level)
			}
		}
	}
}

func TestLevelStyleFallsBackToMuted(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()

	if got := styles.LevelStyle("NOTICE").GetForeground(); got != lipgloss.Color(th.Muted) {
		t.Fatalf("LevelStyle(NOTICE) foreground = %v, want muted %q", got, th.Muted)
	}
	if got := styles.LevelStyle("ERROR").GetForeground(); got != lipgloss.Color(th.LevelColors["ERROR"]) {
		t.Fatalf("LevelStyle(ERROR) foreground = %v, want %q", got, th.LevelColors["ERROR"])
	}
}
