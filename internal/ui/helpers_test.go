package ui

import (
	"errors"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "short", 5, "short"},
		{"cut", "a longer string", 9, "a long..."},
		{"tiny_max", "abcd", 2, "ab"},
		{"zero_max", "abcd", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=5 = %q, want ab", got)
	}
	if got := truncateMiddle("/var/log/app.log", 100); got != "/var/log/app.log" {
		t.Fatalf("truncateMiddle fits = %q, want input unchanged", got)
	}
	got := truncateMiddle("/var/lib/glinrdock/logs/deploy.log", 16)
	if len(got) > 16 {
		t.Fatalf("got %q (%d chars), want <=16", got, len(got))
	}
	if got[len(got)-4:] != ".log" {
		t.Fatalf("got %q, want the file name end preserved", got)
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New("dial tcp 127.0.0.1:8080: connection refused"), "OFFLINE"},
		{"no_host", errors.New("lookup glinr.local: no such host"), "HOST NOT FOUND"},
		{"timeout", errors.New("context deadline exceeded"), "TIMEOUT"},
		{"other", errors.New("api /v1/logs returned status 500"), "ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyConnectionError(tc.err); got != tc.want {
				t.Fatalf("classifyConnectionError = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"minutes", 12 * time.Minute, "12m"},
		{"hours", 2*time.Hour + 3*time.Minute, "2h 3m"},
		{"days", 26 * time.Hour, "1d 2h"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatUptime(tc.in); got != tc.want {
				t.Fatalf("formatUptime(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
