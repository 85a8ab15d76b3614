// Package cli is the terminal view layer: a small REPL over the session
// manager and the dashboard orchestrator. It renders snapshots and view
// models plus human-readable error strings, nothing else.
package cli

import (
	"bufio"
	"context"
	"os"

	"finview/internal/api"
	"finview/internal/config"
	"finview/internal/cookies"
	"finview/internal/dashboard"
	"finview/internal/logging"
	"finview/internal/session"
)

// sessionController is the slice of the session manager the CLI needs.
type sessionController interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, identifier, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	ClearError()
	Snapshot() session.Snapshot
}

// dashboardController is the slice of the orchestrator the CLI needs.
type dashboardController interface {
	Refresh(ctx context.Context) dashboard.ViewModel
	Current() dashboard.ViewModel
}

// cookieWiper lets the logout command drop the persisted session cookie.
type cookieWiper interface {
	Clear(ctx context.Context) error
}

type App struct {
	config    *config.Config
	session   sessionController
	dashboard dashboardController
	jar       cookieWiper
	log       logging.Logger
	reader    *bufio.Reader
}

// NewApp wires the full client: cookie store, transport, gateways, session
// manager, and orchestrator. This is the single construction point for the
// process-wide session; nothing else mutates it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(os.Stderr, cfg.LogLevel)

	db, err := cookies.OpenDatabase(ctx, cfg.CookieDBPath)
	if err != nil {
		return nil, err
	}

	jar, err := cookies.NewJar(ctx, cookies.NewSQLiteStore(db), log)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.ServerBaseURL, jar, cfg.RequestTimeout, log)

	return &App{
		config:    cfg,
		session:   session.NewManager(api.NewAuthAPI(client), log),
		dashboard: dashboard.NewOrchestrator(api.NewDashboardAPI(client), log),
		jar:       jar,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run bootstraps the session and enters the REPL. An already-valid session
// cookie means the user lands straight on a fresh dashboard, like the web
// view refetching on mount.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Bootstrap(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		a.Dashboard(ctx)
	}
	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Status == session.StatusAuthenticated
}
