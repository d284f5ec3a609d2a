//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Jacobbrewer1/foxfire/cmd/bot/config"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/google/wire"
	"github.com/gorilla/mux"
)

func InitializeApp(envFile config.EnvFile) (*App, error) {
	wire.Build(
		wire.Value(logging.Name(config.AppName)),
		logging.NewConfig,
		logging.CommonLogger,
		config.Load,
		mux.NewRouter,
		NewApp,
	)
	return new(App), nil
}
