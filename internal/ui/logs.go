package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GLINCKER/glinview/internal/logparse"
)

// logState holds log pane state.
type logState struct {
	follow bool

	// Search
	searchActive   bool
	searchQuery    string
	searchRegex    *regexp.Regexp
	searchInput    textinput.Model
	searchMatches  []int // Entry indices that match
	searchMatchIdx int   // Current match index

	// Content caching - skip re-render when unchanged
	contentVersion uint64
	lastRendered   uint64
}

// initLogState initializes the log pane state.
func (m *Model) initLogState() {
	ti := textinput.New()
	ti.Placeholder = "Search logs..."
	ti.CharLimit = 100

	m.logState = logState{follow: true}
	m.logState.searchInput = ti
}

// initLogViewport initializes the log viewport.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.logPaneWidth()-2, m.contentHeight()-2)
	m.logViewport.Style = lipgloss.NewStyle()
}

// updateLogViewport resizes the viewport and refreshes its content.
func (m *Model) updateLogViewport() {
	if m.logViewport.Width == 0 {
		m.initLogViewport()
	}

	// Inner size excludes the box borders.
	m.logViewport.Width = m.logPaneWidth() - 2
	m.logViewport.Height = m.contentHeight() - 2

	bg := m.theme.SurfaceAlt
	if m.focusedPane == PaneLogs {
		bg = m.theme.FocusBg
	}
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(bg))

	if m.logState.lastRendered == 0 || m.logState.contentVersion != m.logState.lastRendered {
		m.logViewport.SetContent(m.renderLogContent())
		m.logState.lastRendered = m.logState.contentVersion
		if m.logState.lastRendered == 0 {
			m.logState.lastRendered = 1 // Mark as rendered at least once
		}
	}

	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogPane renders the log box for the right side of the split.
func (m Model) renderLogPane() string {
	focused := m.focusedPane == PaneLogs
	title := m.logTitle()
	content := m.logViewport.View()
	return m.renderTitledBox(title, content, m.logPaneWidth(), m.contentHeight(), focused)
}

// logTitle returns the plain text title for the log box.
func (m Model) logTitle() string {
	if m.snapshot.SelectedPath == "" {
		return "Logs"
	}
	name := m.snapshot.SelectedPath
	for _, p := range m.snapshot.Paths {
		if p.Path == m.snapshot.SelectedPath && p.Name != "" {
			name = p.Name
			break
		}
	}
	return fmt.Sprintf("%s (%d lines)", truncateMiddle(name, 40), m.snapshot.LineCount)
}

// renderLogContent renders the colorized parsed entries.
func (m *Model) renderLogContent() string {
	bgColor := m.theme.SurfaceAlt
	if m.focusedPane == PaneLogs {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	width := m.logViewport.Width

	switch {
	case len(m.snapshot.Paths) == 0 && m.snapshot.PathsErr == nil:
		return bg.FillLine(bg.Render("no log sources", styles.MutedText), width)
	case m.snapshot.SelectedPath == "":
		return bg.FillLine(bg.Render("select a source", styles.MutedText), width)
	case m.snapshot.Loading():
		return bg.FillLine(bg.Render("loading...", styles.MutedText), width)
	case !m.snapshot.Loaded && m.snapshot.LastError != nil:
		return bg.FillLine(bg.Render(truncate(m.snapshot.LastError.Error(), width), styles.DangerText), width)
	case len(m.snapshot.Entries) == 0:
		return bg.FillLine(bg.Render("no log entries", styles.MutedText), width)
	}

	matchSet := make(map[int]bool)
	for _, idx := range m.logState.searchMatches {
		matchSet[idx] = true
	}
	activeMatch := -1
	if len(m.logState.searchMatches) > 0 && m.logState.searchMatchIdx < len(m.logState.searchMatches) {
		activeMatch = m.logState.searchMatches[m.logState.searchMatchIdx]
	}

	var b strings.Builder
	for i, entry := range m.snapshot.Entries {
		lineNum := fmt.Sprintf("%4d │ ", i+1)

		var line string
		switch {
		case i == activeMatch:
			// Active match: highlighted background
			hl := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.Warning)).
				Foreground(lipgloss.Color(m.theme.Background))
			line = hl.Render(lineNum + entry.Raw)
		case matchSet[i]:
			// Passive match: accent foreground
			line = bg.Render(lineNum, styles.AccentText) + bg.Render(entry.Raw, styles.AccentText)
		default:
			line = bg.Render(lineNum, styles.FaintText) + m.colorizeEntry(entry, styles, bg)
		}

		b.WriteString(bg.FillLine(line, width))
		if i < len(m.snapshot.Entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// colorizeEntry renders one parsed entry: faint timestamp, colored level,
// plain message. Lines the parser could not decompose fall back to raw text.
func (m *Model) colorizeEntry(entry logparse.Entry, styles Styles, bg BgStyle) string {
	if entry.Timestamp == "" && entry.Level == "" {
		return bg.Render(entry.Raw, styles.Text)
	}

	var parts []string
	if entry.Timestamp != "" {
		parts = append(parts, bg.Render(entry.Timestamp, styles.FaintText))
	}
	if entry.Level != "" {
		parts = append(parts, bg.Render(entry.Level, styles.LevelStyle(entry.Level)))
	}
	if entry.Message != "" {
		parts = append(parts, bg.Render(entry.Message, styles.Text))
	}
	return strings.Join(parts, bg.Space())
}

// handleLogsKey processes keyboard input for the log pane.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logViewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.logState.searchActive = true
		m.logState.searchInput.Focus()
		m.logState.searchInput.SetValue("")
		return m, nil

	case key.Matches(msg, m.keys.NextMatch):
		m.nextSearchMatch()
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.previousSearchMatch()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.logState.searchRegex != nil {
			m.clearSearch()
			m.updateLogViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.logState.follow = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
		m.logState.follow = false
		return m, nil
	}

	return m, nil
}

// handleSearchInput handles keyboard input while typing a search query.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.logState.searchInput.Value()
		if query == "" {
			m.logState.searchActive = false
			m.logState.searchInput.Blur()
			return m, nil
		}

		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			// Invalid regex - stay in search mode
			return m, nil
		}

		m.logState.searchRegex = re
		m.logState.searchQuery = query
		m.logState.searchActive = false
		m.logState.searchInput.Blur()

		m.findSearchMatches()
		if len(m.logState.searchMatches) > 0 {
			m.logState.searchMatchIdx = 0
			m.scrollToSearchMatch()
		}

		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.logState.searchActive = false
		m.logState.searchInput.Blur()
		m.logState.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.logState.searchInput, cmd = m.logState.searchInput.Update(msg)
	return m, cmd
}

// clearSearch clears the search state.
func (m *Model) clearSearch() {
	m.logState.searchRegex = nil
	m.logState.searchQuery = ""
	m.logState.searchMatches = nil
	m.logState.searchMatchIdx = 0
	m.logState.contentVersion++
}

// clearSearchOnNewContent recomputes match positions after entries change.
func (m *Model) clearSearchOnNewContent() {
	if m.logState.searchRegex == nil {
		return
	}
	m.findSearchMatches()
	if m.logState.searchMatchIdx >= len(m.logState.searchMatches) {
		m.logState.searchMatchIdx = 0
	}
}

// findSearchMatches finds all entries whose raw line matches the search.
func (m *Model) findSearchMatches() {
	m.logState.searchMatches = nil
	if m.logState.searchRegex == nil {
		return
	}
	for i, entry := range m.snapshot.Entries {
		if m.logState.searchRegex.MatchString(entry.Raw) {
			m.logState.searchMatches = append(m.logState.searchMatches, i)
		}
	}
	m.logState.contentVersion++
}

// nextSearchMatch moves to the next search match.
func (m *Model) nextSearchMatch() {
	if len(m.logState.searchMatches) == 0 {
		return
	}
	m.logState.searchMatchIdx = (m.logState.searchMatchIdx + 1) % len(m.logState.searchMatches)
	m.logState.contentVersion++
	m.scrollToSearchMatch()
	m.updateLogViewport()
}

// previousSearchMatch moves to the previous search match.
func (m *Model) previousSearchMatch() {
	if len(m.logState.searchMatches) == 0 {
		return
	}
	n := len(m.logState.searchMatches)
	m.logState.searchMatchIdx = (m.logState.searchMatchIdx - 1 + n) % n
	m.logState.contentVersion++
	m.scrollToSearchMatch()
	m.updateLogViewport()
}

// scrollToSearchMatch scrolls the viewport to show the current match.
func (m *Model) scrollToSearchMatch() {
	if len(m.logState.searchMatches) == 0 || m.logState.searchMatchIdx >= len(m.logState.searchMatches) {
		return
	}
	target := m.logState.searchMatches[m.logState.searchMatchIdx]
	m.logState.follow = false

	scrollTo := max(target-m.logViewport.Height/2, 0)
	m.logViewport.SetYOffset(scrollTo)
}
