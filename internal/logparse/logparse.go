package logparse

import (
	"regexp"
	"strings"
)

// Entry is the structured form of one raw log line. Timestamp and Level are
// empty when the line carries no recognizable marker; Raw always preserves
// the input unmodified.
type Entry struct {
	Timestamp string
	Level     string
	Message   string
	Raw       string
}

var (
	// Leading ISO-8601-like timestamp: date, T or space separator, time,
	// optional fractional seconds, optional Z or ±hh:mm offset.
	timestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?`)

	// Whole-word level marker anywhere in the line, case-insensitive.
	levelRe = regexp.MustCompile(`(?i)\b(TRACE|DEBUG|INFO|WARN|ERROR|FATAL|PANIC)\b`)

	// A single bracketed prefix like "[api] " at the start of a line.
	bracketPrefixRe = regexp.MustCompile(`^\[[^\]]*\]\s+`)

	// Level token at the start of the remainder once prefix and timestamp
	// are gone, including its trailing separator.
	leadingLevelRe = regexp.MustCompile(`(?i)^\s*(?:TRACE|DEBUG|INFO|WARN|ERROR|FATAL|PANIC)\b:?\s*`)
)

// ParseLine converts one raw log line into an Entry. It is pure and total:
// every input, including the empty string, yields a valid Entry.
func ParseLine(raw string) Entry {
	entry := Entry{Raw: raw}

	if ts := timestampRe.FindString(raw); ts != "" {
		entry.Timestamp = ts
	}
	if lvl := levelRe.FindString(raw); lvl != "" {
		entry.Level = strings.ToUpper(lvl)
	}
	entry.Message = deriveMessage(raw)

	return entry
}

// ParseLines parses a batch of raw lines in order.
func ParseLines(raw []string) []Entry {
	if len(raw) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(raw))
	for _, line := range raw {
		entries = append(entries, ParseLine(line))
	}
	return entries
}

// deriveMessage strips the leading bracket prefix, timestamp, and level
// token from a line. A bracket fragment appearing after the timestamp is
// left in place; only a true line prefix is removed.
func deriveMessage(raw string) string {
	msg := bracketPrefixRe.ReplaceAllString(raw, "")
	if ts := timestampRe.FindString(msg); ts != "" {
		// The single separator space belongs to the stripped prefix.
		msg = strings.TrimPrefix(msg[len(ts):], " ")
	}
	return leadingLevelRe.ReplaceAllString(msg, "")
}
