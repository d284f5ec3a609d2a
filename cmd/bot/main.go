package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Jacobbrewer1/foxfire/cmd/bot/config"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", config.DefaultEnvFile, "Path of the dotenv file to load")
	pflag.Parse()

	a, err := InitializeApp(config.EnvFile(*envFile))
	if err != nil {
		log.Fatalln(err)
	}

	a.Info("Starting application")
	if err := a.Run(context.Background()); err != nil {
		a.Error("Error running application", slog.String(logging.KeyError, err.Error()))
		os.Exit(1)
	}
}
