// Package server initializes and runs the mock record store: it picks the
// storage backend, applies migrations, loads seed users and serves the REST
// API until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authdemo/internal/logging"
	"github.com/dmitrijs2005/authdemo/internal/server/config"
	"github.com/dmitrijs2005/authdemo/internal/server/models"
	"github.com/dmitrijs2005/authdemo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authdemo/internal/server/repositories/users"
	"github.com/dmitrijs2005/authdemo/internal/server/rest"
	"github.com/dmitrijs2005/authdemo/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// openPostgres is a seam for tests.
var openPostgres = repomanager.OpenPostgres

// NewApp builds the store. An empty DatabaseDSN keeps records in memory;
// otherwise PostgreSQL is opened and migrated.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	var repo users.Repository
	if c.DatabaseDSN == "" {
		logger.Info(ctx, "Using in-memory storage")
		repo = users.NewMemoryRepository()
	} else {
		db, err := openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm := repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		app.db = db
		repo = rm.Users(db)
	}

	app.userService = services.NewUserService(repo)

	if c.SeedFile != "" {
		if err := app.seed(ctx, c.SeedFile); err != nil {
			_ = app.Close()
			return nil, err
		}
	}

	return app, nil
}

func (app *App) seed(ctx context.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var in []models.NewUser
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}
	n, err := app.userService.Seed(ctx, in)
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "Seeded users", "count", n, "file", path)
	return nil
}

// Close releases the database, if one was opened.
func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	return app.db.Close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the REST API until a signal arrives or the server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	s := rest.NewServer(app.config.EndpointAddr, app.logger, app.userService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
		return err
	}
	return nil
}

// NewLogger is the store's process logger: JSON on stdout.
func NewLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}
