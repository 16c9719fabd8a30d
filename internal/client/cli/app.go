// Package cli is the page-level orchestrator of the interview client: it
// reacts to user commands, drives the auth and interview services, and
// renders every outcome through the Notifier/ChartRenderer collaborators.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/api"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/config"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/services"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/storage"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/logging"
)

// Mode tracks server reachability as seen by the background probe. It is
// display-only: auth and session outcomes never depend on it.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config    *config.Config
	auth      services.AuthService
	interview *services.InterviewService
	store     *services.CredentialStore
	notifier  Notifier
	chart     ChartRenderer
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer

	cred models.Credential

	modeMu sync.Mutex
	mode   Mode
}

// NewApp wires the client together: local storage, API transport, and the
// services on top.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.BaseURL)
	store := services.NewCredentialStore(db, log)

	return &App{
		config:    cfg,
		auth:      services.NewAuthService(apiClient, store, log),
		interview: services.NewInterviewService(apiClient, log),
		store:     store,
		notifier:  &ConsoleNotifier{W: os.Stdout},
		chart:     &ConsoleChart{W: os.Stdout},
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores the persisted credential, starts the connectivity watcher
// and enters the REPL. It returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() { _ = a.auth.Close(ctx) }()

	a.cred = a.store.Get(ctx)
	if !a.cred.IsAnonymous() {
		a.notifier.Notify("Welcome back, "+a.cred.DisplayName(), SeverityInfo)
	}

	go a.StartConnectivityWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return !a.cred.IsAnonymous()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// StartConnectivityWatcher periodically probes the server's health
// endpoint and flips the online/offline indicator. Probe failures are
// logged and ignored; they never interrupt auth or interview flows.
func (a *App) StartConnectivityWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(probeCtx)
			cancel()

			if err != nil {
				a.log.Debug(ctx, "health probe failed", "error", err)
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// fail translates an error into a user-visible notification. Session-state
// sentinels get their own text; API failures carry the server-extracted
// message; everything else is logged and shown as-is.
func (a *App) fail(ctx context.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		a.notifier.Notify("please login first", SeverityWarning)
	case errors.Is(err, services.ErrSessionEnded):
		a.notifier.Notify("session already ended", SeverityWarning)
	case errors.Is(err, services.ErrNoSession):
		a.notifier.Notify("no interview in progress, type 'start' to begin", SeverityWarning)
	case errors.Is(err, services.ErrSessionActive):
		a.notifier.Notify("an interview is already in progress, type 'end' to finish it", SeverityWarning)
	default:
		a.log.Error(ctx, "command failed", "error", err)
		a.notifier.Notify(api.FailureMessage(err), SeverityError)
	}
}
