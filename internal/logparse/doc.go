// Package logparse turns raw log lines into structured entries.
//
// The daemon returns log content as plain text lines with no schema; this
// package extracts the pieces the UI colorizes (timestamp, level, message)
// without ever failing. Lines that match no pattern simply come back with
// those fields unset and the original text preserved in Raw.
//
// Recognized line shape:
//
//	2025-01-27T15:30:02Z WARN No existing projects found
//	[api] 2025-01-27 15:30:02 INFO request served
//	plain text with no markers
//
// ParseLine is a pure function of its input: no state is carried between
// lines, so it can be exercised (and fuzzed) independently of the UI.
package logparse
