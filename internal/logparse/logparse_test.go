package logparse

import "testing"

func TestParseLine_TimestampLevelMessage(t *testing.T) {
	raw := "2025-01-27T15:30:02Z WARN No existing projects found"
	entry := ParseLine(raw)

	if entry.Timestamp != "2025-01-27T15:30:02Z" {
		t.Fatalf("Timestamp = %q, want 2025-01-27T15:30:02Z", entry.Timestamp)
	}
	if entry.Level != "WARN" {
		t.Fatalf("Level = %q, want WARN", entry.Level)
	}
	if entry.Message != "No existing projects found" {
		t.Fatalf("Message = %q, want stripped message", entry.Message)
	}
	if entry.Raw != raw {
		t.Fatalf("Raw = %q, want original line", entry.Raw)
	}
}

func TestParseLine_PlainText(t *testing.T) {
	raw := "plain text with no markers"
	entry := ParseLine(raw)

	if entry.Timestamp != "" {
		t.Fatalf("Timestamp = %q, want empty", entry.Timestamp)
	}
	if entry.Level != "" {
		t.Fatalf("Level = %q, want empty", entry.Level)
	}
	if entry.Message != raw {
		t.Fatalf("Message = %q, want unchanged line", entry.Message)
	}
	if entry.Raw != raw {
		t.Fatalf("Raw = %q, want original line", entry.Raw)
	}
}

func TestParseLine_TimestampVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"space separator", "2025-01-27 15:30:02 booted", "2025-01-27 15:30:02"},
		{"fractional seconds", "2025-01-27T15:30:02.123456Z started", "2025-01-27T15:30:02.123456Z"},
		{"positive offset", "2025-01-27T15:30:02+05:30 started", "2025-01-27T15:30:02+05:30"},
		{"negative offset", "2025-01-27T15:30:02-08:00 started", "2025-01-27T15:30:02-08:00"},
		{"no zone", "2025-01-27T15:30:02 started", "2025-01-27T15:30:02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseLine(tt.raw)
			if entry.Timestamp != tt.want {
				t.Fatalf("Timestamp = %q, want %q", entry.Timestamp, tt.want)
			}
			if entry.Message != "started" && entry.Message != "booted" {
				t.Fatalf("Message = %q, want timestamp stripped", entry.Message)
			}
		})
	}
}

func TestParseLine_TimestampNotAnchoredMidLine(t *testing.T) {
	entry := ParseLine("saw event at 2025-01-27T15:30:02Z during sync")
	if entry.Timestamp != "" {
		t.Fatalf("Timestamp = %q, want empty for mid-line timestamp", entry.Timestamp)
	}
}

func TestParseLine_LevelCaseInsensitive(t *testing.T) {
	for _, raw := range []string{
		"worker info ready",
		"worker Info ready",
		"worker INFO ready",
	} {
		entry := ParseLine(raw)
		if entry.Level != "INFO" {
			t.Fatalf("ParseLine(%q).Level = %q, want INFO", raw, entry.Level)
		}
	}
}

func TestParseLine_LevelWholeWordOnly(t *testing.T) {
	entry := ParseLine("WARNING: disk pressure")
	if entry.Level != "" {
		t.Fatalf("Level = %q, want empty (WARNING is not a whole-word WARN)", entry.Level)
	}

	entry = ParseLine("DEBUGGING session open")
	if entry.Level != "" {
		t.Fatalf("Level = %q, want empty (DEBUGGING is not DEBUG)", entry.Level)
	}
}

func TestParseLine_FirstLevelWins(t *testing.T) {
	entry := ParseLine("DEBUG retrying after ERROR from upstream")
	if entry.Level != "DEBUG" {
		t.Fatalf("Level = %q, want DEBUG (first match)", entry.Level)
	}
}

func TestParseLine_AllLevels(t *testing.T) {
	for _, lvl := range []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL", "PANIC"} {
		entry := ParseLine("2025-01-27T15:30:02Z " + lvl + " something happened")
		if entry.Level != lvl {
			t.Fatalf("Level = %q, want %q", entry.Level, lvl)
		}
		if entry.Message != "something happened" {
			t.Fatalf("Message = %q, want level stripped for %s", entry.Message, lvl)
		}
	}
}

func TestParseLine_BracketPrefixStripped(t *testing.T) {
	raw := "[api] 2025-01-27T15:30:02Z INFO request served"
	entry := ParseLine(raw)
	if entry.Timestamp != "" {
		// Timestamp extraction is anchored at the line start; the bracket
		// prefix pushes it off position zero.
		t.Fatalf("Timestamp = %q, want empty when line starts with a bracket prefix", entry.Timestamp)
	}
	if entry.Message != "request served" {
		t.Fatalf("Message = %q, want prefix, timestamp, and level stripped", entry.Message)
	}
	if entry.Raw != raw {
		t.Fatalf("Raw = %q, want original line", entry.Raw)
	}
}

func TestParseLine_BracketAfterTimestampKeptInMessage(t *testing.T) {
	entry := ParseLine("2025-01-27T15:30:02Z INFO [tag] payload accepted")
	if entry.Message != "[tag] payload accepted" {
		t.Fatalf("Message = %q, want mid-line bracket fragment kept", entry.Message)
	}
}

func TestParseLine_EmptyInput(t *testing.T) {
	entry := ParseLine("")
	if entry.Timestamp != "" || entry.Level != "" || entry.Message != "" || entry.Raw != "" {
		t.Fatalf("ParseLine(\"\") = %#v, want all fields empty", entry)
	}
}

func TestParseLine_Idempotent(t *testing.T) {
	raw := "2025-01-27 15:30:02.5 error [db] connection reset"
	first := ParseLine(raw)
	second := ParseLine(raw)
	if first != second {
		t.Fatalf("ParseLine not idempotent: %#v vs %#v", first, second)
	}
}

func TestParseLines_OrderPreserved(t *testing.T) {
	entries := ParseLines([]string{"first", "second", "third"})
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Raw != want {
			t.Fatalf("entries[%d].Raw = %q, want %q", i, entries[i].Raw, want)
		}
	}
}

func TestParseLines_Empty(t *testing.T) {
	if entries := ParseLines(nil); entries != nil {
		t.Fatalf("ParseLines(nil) = %#v, want nil", entries)
	}
}
