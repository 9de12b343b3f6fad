package main

import (
	"fmt"
	"os"

	"github.com/benthecarman/ldk-server-cli/config"
	"github.com/benthecarman/ldk-server-cli/handlers"
	"github.com/benthecarman/ldk-server-cli/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/urfave/cli/v2"
)

func main() {
	log.Namespace = "ldk-server-cli"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring CLI: %s. Exiting", err), nil)
		os.Exit(1)
	}

	svc := service.New(cfg, os.Stdout)

	app := &cli.App{
		Name:     "ldk-server-cli",
		Usage:    "Command line client for an LDK node control server",
		Commands: handlers.Init(svc),
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err, nil)
		os.Exit(1)
	}
}
