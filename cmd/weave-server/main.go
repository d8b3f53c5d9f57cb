// Command weave-server runs a Dragonfly server with spell cores enabled.
package main

import (
	"log/slog"
	"os"

	"github.com/df-mc/dragonfly/server"
	"github.com/oriumgames/weave"
	"github.com/oriumgames/weave/dfweave"
)

func main() {
	sc, err := loadServerConfig()
	if err != nil {
		slog.Error("weave: invalid environment", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sc.LogLevel}))
	slog.SetDefault(log)

	cfg, err := weave.LoadConfig(sc.ModulesConfig)
	if err != nil {
		log.Warn("weave: using default module config", "path", sc.ModulesConfig, "error", err)
	}

	eng := weave.NewBuilder().
		Config(cfg).
		Logger(log).
		Loadouts(dfweave.HeldLoadouts{}).
		Init()
	dfweave.RegisterCommands(eng)

	uc := server.DefaultConfig()
	uc.Server.Name = sc.ServerName
	uc.World.Folder = sc.WorldFolder
	uc.Network.Address = sc.Address

	conf, err := uc.Config(log)
	if err != nil {
		log.Error("weave: invalid server config", "error", err)
		os.Exit(1)
	}

	srv := conf.New()
	srv.CloseOnProgramEnd()
	srv.Listen()

	for p := range srv.Accept() {
		p.Handle(dfweave.NewHandler(eng))
	}
}
