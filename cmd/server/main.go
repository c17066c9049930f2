package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authdemo/internal/buildinfo"
	"github.com/dmitrijs2005/authdemo/internal/server"
	"github.com/dmitrijs2005/authdemo/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, server.NewLogger())

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
