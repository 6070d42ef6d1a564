package cli

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/superapp/internal/client/config"
	"github.com/dmitrijs2005/superapp/internal/client/services"
	"github.com/dmitrijs2005/superapp/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single health probe of the status watcher.
const pingTimeout = 3 * time.Second

type App struct {
	config          *config.Config
	authService     services.AuthService
	activityService services.ActivityService
	navigator       *LoginNavigator
	log             logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(
	c *config.Config,
	as services.AuthService,
	acs services.ActivityService,
	nav *LoginNavigator,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		config:          c,
		authService:     as,
		activityService: acs,
		navigator:       nav,
		log:             log,
		reader:          bufio.NewReader(in),
		out:             out,
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, err := a.authService.Whoami()
	return err == nil
}

// checkOnline probes the health endpoint once and records the result.
func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := a.authService.Ping(pctx); err != nil {
		a.log.Debug(ctx, "health check failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher probes the backend every interval until ctx is
// done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
