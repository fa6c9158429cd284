package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.LineCount != defaultLineCount {
		t.Fatalf("LineCount = %d, want %d", p.LineCount, defaultLineCount)
	}
}

func TestLoad_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
theme = "Slate"
line_count = 500
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
	if p.LineCount != 500 {
		t.Fatalf("LineCount = %d, want 500", p.LineCount)
	}
}

func TestLoad_InvalidTOMLDegradesGracefully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme || p.LineCount != defaultLineCount {
		t.Fatalf("Load = %+v, want defaults on parse failure", p)
	}
}

func TestLoad_ZeroLineCountFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`line_count = 0`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(path); p.LineCount != defaultLineCount {
		t.Fatalf("LineCount = %d, want default for zero", p.LineCount)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa", LineCount: 200}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(path)
	if p.Theme != "Kanagawa" || p.LineCount != 200 {
		t.Fatalf("Load after Save = %+v, want saved values", p)
	}
}
