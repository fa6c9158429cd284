package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GLINCKER/glinview/internal/prefs"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Search input mode captures everything except confirm/cancel
	if m.logState.searchActive {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.poller != nil {
			m.poller.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.logState.contentVersion++
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == PaneSources {
			m.focusedPane = PaneLogs
		} else {
			m.focusedPane = PaneSources
		}
		// Pane backgrounds follow focus, so the log content must re-render.
		m.logState.contentVersion++
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.ToggleAuto):
		enabled := !m.snapshot.AutoRefresh
		m.store.SetAutoRefresh(enabled)
		if m.poller != nil {
			m.poller.SetEnabled(enabled)
		}
		m.refreshSnapshot()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		path, lines := m.store.Params()
		return m, m.fetchLogs(path, lines)

	case key.Matches(msg, m.keys.CycleLineCount):
		m.store.CycleLineCount()
		m.refreshSnapshot()
		m.savePrefs()
		m.syncPoller()
		path, lines := m.store.Params()
		return m, m.fetchLogs(path, lines)
	}

	switch m.focusedPane {
	case PaneSources:
		return m.handleSourcesKey(msg)
	case PaneLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// handleSourcesKey processes keyboard input for the sources pane.
func (m Model) handleSourcesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Paths)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.Select):
		path := m.snapshot.Paths[m.cursor].Path
		if path != m.snapshot.SelectedPath {
			m.store.SelectPath(path)
			m.refreshSnapshot()
			m.syncPoller()
			_, lines := m.store.Params()
			return m, m.fetchLogs(path, lines)
		}
	}

	return m, nil
}

// savePrefs persists the current theme and line count. Failures degrade
// silently; preferences are a convenience, not state.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:     m.theme.Name,
		LineCount: m.snapshot.LineCount,
	})
}
