package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GLINCKER/glinview/internal/debuglog"
	"github.com/GLINCKER/glinview/internal/glinr"
	"github.com/GLINCKER/glinview/internal/poller"
	"github.com/GLINCKER/glinview/internal/prefs"
	"github.com/GLINCKER/glinview/internal/viewer"
)

// Pane identifies which side of the split has keyboard focus.
type Pane int

const (
	PaneSources Pane = iota
	PaneLogs
)

const fetchTimeout = 5 * time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    glinr.Fetcher
	Store     *viewer.Store
	Poller    *poller.Poller
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    glinr.Fetcher
	store     *viewer.Store
	poller    *poller.Poller
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	width       int
	height      int
	ready       bool
	focusedPane Pane

	// Data state
	snapshot viewer.Snapshot
	system   *glinr.SystemInfo

	// Sources pane
	cursor int

	// Log pane
	logViewport viewport.Model
	logState    logState

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		poller:      opts.Poller,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		focusedPane: PaneSources,
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		fetchPathsCmd(m.ctx, m.client),
		fetchSystemCmd(m.ctx, m.client),
	}
	if m.poller != nil {
		cmds = append(cmds, waitForPollCmd(m.ctx, m.poller.Requests()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogState()
			m.initLogViewport()
		}
		m.ready = true
		m.updateLogViewport()
		return m, nil

	case pollMsg:
		// A poll tick carries the parameters captured at configure time.
		return m, tea.Batch(
			m.fetchLogs(msg.Path, msg.Lines),
			waitForPollCmd(m.ctx, m.poller.Requests()),
		)

	case pathsMsg:
		selected, autoSelected := m.store.SetPaths(msg.paths, msg.err)
		if msg.err != nil {
			debuglog.Warnf("path list fetch failed: %v", msg.err)
		}
		m.refreshSnapshot()
		if n := len(m.snapshot.Paths); n > 0 && m.cursor >= n {
			m.cursor = n - 1
		}
		m.logState.contentVersion++
		m.updateLogViewport()
		if autoSelected {
			m.syncPoller()
			_, lines := m.store.Params()
			return m, m.fetchLogs(selected, lines)
		}
		return m, nil

	case logsMsg:
		applied := m.store.Apply(viewer.Result(msg))
		if msg.Err != nil {
			debuglog.Warnf("log fetch failed (path=%s lines=%d): %v", msg.Path, msg.Lines, msg.Err)
		}
		m.refreshSnapshot()
		if applied {
			m.logState.contentVersion++
			if msg.Err == nil {
				m.clearSearchOnNewContent()
			}
		}
		m.updateLogViewport()
		return m, nil

	case systemMsg:
		if msg.err == nil {
			m.system = msg.info
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain renders the full UI: header, command bar, split content, status.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

// refreshSnapshot pulls the latest state from the store.
func (m *Model) refreshSnapshot() {
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
}

// syncPoller pushes the current selection into the poll controller.
func (m *Model) syncPoller() {
	if m.poller == nil {
		return
	}
	path, lines := m.store.Params()
	m.poller.Configure(path, lines)
}

// fetchLogs starts a log fetch for the given request parameters. The result
// message carries them back so the store can discard stale responses.
func (m *Model) fetchLogs(path string, lines int) tea.Cmd {
	if m.client == nil || path == "" {
		return nil
	}
	m.store.BeginFetch()
	m.refreshSnapshot()
	m.logState.contentVersion++
	m.updateLogViewport()
	return fetchLogsCmd(m.ctx, m.client, path, lines)
}

// Messages

type pollMsg poller.Request

type pathsMsg struct {
	paths []glinr.LogPath
	err   error
}

type logsMsg viewer.Result

type systemMsg struct {
	info *glinr.SystemInfo
	err  error
}

// Commands

// waitForPollCmd blocks on the poll request channel and converts the next
// tick into a message. The command re-arms itself from Update.
func waitForPollCmd(ctx context.Context, requests <-chan poller.Request) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case req, ok := <-requests:
			if !ok {
				return nil
			}
			return pollMsg(req)
		}
	}
}

func fetchPathsCmd(ctx context.Context, client glinr.Fetcher) tea.Cmd {
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		paths, err := client.FetchLogPaths(ctx)
		return pathsMsg{paths: paths, err: err}
	}
}

func fetchLogsCmd(ctx context.Context, client glinr.Fetcher, path string, lines int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		raw, err := client.FetchLogs(ctx, glinr.LogQuery{Path: path, Lines: lines})
		return logsMsg(viewer.Result{Path: path, Lines: lines, Raw: raw, Err: err})
	}
}

func fetchSystemCmd(ctx context.Context, client glinr.Fetcher) tea.Cmd {
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		info, err := client.FetchSystem(ctx)
		return systemMsg{info: info, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits. The poller is
// closed on the way out so no timer fires after the terminal is restored.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if opts.Poller != nil {
		opts.Poller.Close()
	}
	return err
}
