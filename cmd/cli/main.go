package main

import (
	"context"
	"log"
	"os"

	"github.com/avoronov/itemkeeper/internal/buildinfo"
	"github.com/avoronov/itemkeeper/internal/cli"
	"github.com/avoronov/itemkeeper/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}
