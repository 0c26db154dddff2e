package main

import (
	"os"

	"spend/internal/cli"
	applog "spend/internal/log"
	"spend/internal/screen"
	"spend/internal/term"
)

func main() {
	cli.LoadEnvFile()

	bootstrap := cli.SetupLogger(cli.ParseLogLevel(os.Getenv("LOG_LEVEL")))
	cfg := cli.LoadAndValidateConfig(bootstrap)
	logger := cli.SetupLogger(cli.ParseLogLevel(cfg.LogLevel))

	service, err := cli.NewService(logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize backend",
			applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}

	ctx, stop := cli.SignalContext(logger)
	defer stop()

	renderer := term.NewRenderer(os.Stdout)
	list := screen.New(service, renderer.Render, screen.WithLogger(logger))
	renderer.Bind(list)

	logger.Info("Starting spend",
		applog.FieldOperation, applog.OpStartup, applog.FieldBackend, cfg.DataBackend)

	session := term.NewSession(list, os.Stdout)
	if err := session.Run(ctx, os.Stdin); err != nil {
		logger.Error("Session ended with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Goodbye", applog.FieldOperation, applog.OpShutdown)
}
