package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogsync/internal/client/api"
	"github.com/dmitrijs2005/blogsync/internal/client/config"
	"github.com/dmitrijs2005/blogsync/internal/client/session"
	"github.com/dmitrijs2005/blogsync/internal/client/store"
	"github.com/dmitrijs2005/blogsync/internal/client/vault"
	"github.com/dmitrijs2005/blogsync/internal/filex"
	"github.com/dmitrijs2005/blogsync/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config *config.Config
	state  *session.State
	log    logging.Logger
	reader *bufio.Reader
	Mode   Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := newLogger(c.LogLevel)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := store.InitDatabase(ctx, filepath.Join(dir, "settings.db"))
	if err != nil {
		log.Error(ctx, "error initializing settings database", "error", err)
		return nil, err
	}

	client := api.NewHTTPClient(c.RequestTimeout, log)
	state := session.New(store.NewSQLiteRepository(db), vault.NewFileVault(dir), client, log)

	if err := state.Init(ctx); err != nil {
		return nil, err
	}

	return &App{
		config: c,
		state:  state,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func newLogger(level string) logging.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return logging.NewSlogLogger(slog.New(h))
}

func (a *App) isConfigured() bool {
	return a.state.Configured()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// online/offline mode shown in the prompt. While unconfigured the watcher
// reports ModeDisabled and performs no probes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isConfigured() {
				a.setMode(ctx, ModeDisabled)
				continue
			}

			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.state.CheckServer(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) Run(ctx context.Context) {
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if !a.isConfigured() {
		return "(not connected)"
	}
	s := a.state.Host()
	if a.Mode != "" {
		s += " " + string(a.Mode)
	}
	return "(" + s + ")"
}
