package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authdemo/internal/buildinfo"
	"github.com/dmitrijs2005/authdemo/internal/client/bootstrap"
	"github.com/dmitrijs2005/authdemo/internal/client/config"
	"github.com/dmitrijs2005/authdemo/internal/client/web"
	"github.com/dmitrijs2005/authdemo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	rt, err := bootstrap.New(ctx, cfg, logger, web.NewNavigator(logger))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := rt.Close(context.Background()); err != nil {
			logger.Warn(context.Background(), "shutdown", "error", err)
		}
	}()

	// Requests that arrive before the restore finishes see the Pending page.
	go rt.Session.Restore(ctx)

	srv, err := web.NewServer(rt.Auth, rt.Session, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := srv.Run(ctx, cfg.WebAddr); err != nil {
		logger.Error(ctx, "web server stopped", "error", err)
	}

}
