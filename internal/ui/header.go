package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.Loaded && m.snapshot.LastError == nil && m.snapshot.PathsErr == nil && len(m.snapshot.Paths) == 0 {
		return m.renderConnectingHeader(styles, bg)
	}

	content := m.buildStatusContent(styles, bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderConnectingHeader shows the pre-first-load state.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)
	return styles.Header.Width(m.width).Render(
		bg.Render("glinview", styles.Logo) + sep +
			bg.Render("Connecting to glinrdock...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the header content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	var parts []string

	parts = append(parts, bg.Render("glinview", styles.Logo))

	// Daemon indicator
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	} else {
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
	}

	// Daemon version and uptime from /v1/system
	if m.system != nil && !compact {
		if v := strings.TrimSpace(m.system.Version); v != "" {
			parts = append(parts,
				bg.Render("glinrdock", styles.MutedText)+bg.Space()+
					bg.Render(v, styles.Text))
		}
		if up := m.system.Uptime(); up > 0 {
			parts = append(parts,
				bg.Render("up", styles.MutedText)+bg.Space()+
					bg.Render(formatUptime(up), styles.InfoText))
		}
	}

	// Source count
	parts = append(parts,
		bg.Render("Sources:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Paths)), styles.Text))

	// Timestamp with relative time
	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Error indicator
	if err := m.currentError(); err != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		label := classifyConnectionError(err)
		errText := truncate(err.Error(), maxErr)
		parts = append(parts,
			bg.Render(label, styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText))
	}

	return bg.Join(parts, "  ")
}

// currentError returns the error to surface in the header, if any.
func (m Model) currentError() error {
	if m.snapshot.LastError != nil {
		return m.snapshot.LastError
	}
	return m.snapshot.PathsErr
}

// formatTimestamp formats the last update time with a relative indicator.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}

	since := time.Since(m.snapshot.LastUpdated)
	timeStr := m.snapshot.LastUpdated.Format("15:04:05")

	if since < time.Minute {
		timeStr += " (now)"
	} else if since < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	} else if since < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short label for the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.focusedPane == PaneLogs {
		followLabel := "Follow"
		if m.logState.follow {
			followLabel = "Pause"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"/", "Search"},
			{"n/N", "Next/Prev"},
			{"a", m.autoLabel()},
			{"r", "Refresh"},
			{"c", fmt.Sprintf("%d lines", m.snapshot.LineCount)},
			{"Tab", "Sources"},
			{"?", "More"},
		}
	} else {
		commands = []cmd{
			{"j/k", "Navigate"},
			{"Enter", "Select"},
			{"a", m.autoLabel()},
			{"r", "Refresh"},
			{"c", fmt.Sprintf("%d lines", m.snapshot.LineCount)},
			{"Tab", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show active search pattern
	if m.logState.searchQuery != "" {
		pattern := truncate(m.logState.searchQuery, 18)
		segments = append(segments, bg.Render("/"+pattern, styles.AccentText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

func (m Model) autoLabel() string {
	if m.snapshot.AutoRefresh {
		return "Auto on"
	}
	return "Auto off"
}

// renderStatusBar renders the bottom status line.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	// Active search status takes over the bar
	if m.logState.searchRegex != nil && len(m.logState.searchMatches) > 0 {
		return styles.Header.Width(m.width).Render(
			bg.Render("/"+m.logState.searchQuery, styles.AccentText) +
				bg.Render(" - ", styles.FaintText) +
				bg.Render(fmt.Sprintf("%d/%d", m.logState.searchMatchIdx+1, len(m.logState.searchMatches)), styles.WarningText) +
				bg.Render(" - ", styles.FaintText) +
				bg.Render("n", styles.AccentText) +
				bg.Render(" next, ", styles.FaintText) +
				bg.Render("N", styles.AccentText) +
				bg.Render(" previous, ", styles.FaintText) +
				bg.Render("Esc", styles.AccentText) +
				bg.Render(" to clear", styles.FaintText))
	}
	if m.logState.searchRegex != nil {
		return styles.Header.Width(m.width).Render(
			bg.Render("Pattern not found: "+m.logState.searchQuery, styles.DangerText))
	}

	var parts []string

	source := m.snapshot.SelectedPath
	if source == "" {
		source = "none"
	}
	parts = append(parts,
		bg.Render("source", styles.FaintText)+bg.Space()+
			bg.Render(truncateMiddle(source, 50), styles.Text))

	parts = append(parts, bg.Render(fmt.Sprintf("%d lines", m.snapshot.LineCount), styles.MutedText))

	auto := "auto-refresh off"
	autoStyle := styles.FaintText
	if m.snapshot.AutoRefresh {
		auto = "auto-refresh on"
		autoStyle = styles.SuccessText
	}
	parts = append(parts, bg.Render(auto, autoStyle))

	if m.snapshot.Fetching && m.snapshot.Loaded {
		parts = append(parts, bg.Render("refreshing...", styles.InfoText))
	}

	if m.logState.searchActive {
		parts = append(parts, bg.Render("search: "+m.logState.searchInput.Value(), styles.AccentText))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("offline", styles.DangerText))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, bg.Render(truncate(m.snapshot.LastError.Error(), 60), styles.WarningText))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// formatUptime renders a daemon uptime compactly.
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours >= 24 {
		days := hours / 24
		hours %= 24
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	// Keep more of the end (file name) than the start
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}
