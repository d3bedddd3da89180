package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"calbridge/internal/config"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	config.LoadDotEnv()

	app := &cli.App{
		Name:  "calbridge",
		Usage: "Map Google Calendar and Tasks data to a provider-neutral model and sync it to iCloud.",
		Commands: []*cli.Command{
			authCommand(),
			syncCommand(),
			calendarsCommand(),
			tasksCommand(),
			convertCommand(),
			encodeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
