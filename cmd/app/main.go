package main

import (
	"flag"
	"os"

	"SignalEngine/internal/di"
	"SignalEngine/pkg/config"
	applogger "SignalEngine/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	boot, err := applogger.New(&applogger.Config{Level: "info", Format: "json", Output: "stderr"})
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		boot.Error("signalengine.config", applogger.String("path", *configPath), applogger.Error(err))
		os.Exit(1)
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		boot.Error("signalengine.init", applogger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		boot.Error("signalengine.run", applogger.Error(err))
		os.Exit(1)
	}
}
