package app

import (
	"context"
	"fmt"
	"time"

	"github.com/GLINCKER/glinview/internal/config"
	"github.com/GLINCKER/glinview/internal/debuglog"
	"github.com/GLINCKER/glinview/internal/glinr"
	"github.com/GLINCKER/glinview/internal/poller"
	"github.com/GLINCKER/glinview/internal/prefs"
	"github.com/GLINCKER/glinview/internal/ui"
	"github.com/GLINCKER/glinview/internal/viewer"
)

const initialFetchTimeout = 3 * time.Second

// Options configure the glinview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/glinview/prefs.toml
	PollEvery  int    // seconds; zero uses the configured value
}

// Run boots the glinview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	debuglog.Init()
	defer debuglog.Sync()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load glinview config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := glinr.NewClient(cfg.APIBind, cfg.Token)
	if err != nil {
		return fmt.Errorf("init glinrdock client: %w", err)
	}

	store := viewer.New()
	store.SetLineCount(userPrefs.LineCount)

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	p := poller.New(interval)
	defer p.Close()

	// Best-effort initial load so the UI starts with data instead of a
	// connecting screen when the daemon is up.
	initialLoad(ctx, client, store, p)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Poller:    p,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// initialLoad fetches the path list and, when a source is auto-selected, its
// first log batch. Failures are recorded in the store and surfaced by the UI;
// they never block startup.
func initialLoad(ctx context.Context, client *glinr.Client, store *viewer.Store, p *poller.Poller) {
	ctx, cancel := context.WithTimeout(ctx, initialFetchTimeout)
	defer cancel()

	paths, err := client.FetchLogPaths(ctx)
	selected, autoSelected := store.SetPaths(paths, err)
	if err != nil {
		debuglog.Warnf("initial path list fetch failed: %v", err)
	}
	if !autoSelected {
		return
	}

	_, lines := store.Params()
	p.Configure(selected, lines)

	store.BeginFetch()
	raw, err := client.FetchLogs(ctx, glinr.LogQuery{Path: selected, Lines: lines})
	if err != nil {
		debuglog.Warnf("initial log fetch failed: %v", err)
	}
	store.Apply(viewer.Result{Path: selected, Lines: lines, Raw: raw, Err: err})
}
