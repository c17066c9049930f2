package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/client/bootstrap"
	"github.com/dmitrijs2005/authdemo/internal/client/config"
	"github.com/dmitrijs2005/authdemo/internal/client/services"
	"github.com/dmitrijs2005/authdemo/internal/client/session"
	"github.com/dmitrijs2005/authdemo/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	session     *session.Container
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	watch       *sessionWatch
	closeFn     func(context.Context) error

	modeMu sync.Mutex
	Mode   Mode
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	// The REPL learns about a rejected session from the container itself,
	// so it needs no navigator.
	rt, err := bootstrap.New(ctx, c, logger, nil)
	if err != nil {
		logger.Error(ctx, "error initializing session core", "error", err)
		return nil, err
	}

	return &App{
		config:      c,
		authService: rt.Auth,
		session:     rt.Session,
		logger:      logger.With("module", "cli"),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		watch:       watchSession(rt.Session),
		closeFn:     rt.Close,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.watch != nil {
			a.watch.stop()
		}
		if a.closeFn != nil {
			if err := a.closeFn(ctx); err != nil {
				a.logger.Warn(ctx, "shutdown", "error", err)
			}
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

// StartOnlineStatusWatcher pings the record store every interval and keeps
// Mode current. A non-positive interval checks once.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

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

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
