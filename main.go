package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	app "github.com/rocketscienceinc/tictactoe-rooms/internal"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
)

var cli struct {
	Config string `help:"Path to the configuration file." default:"./config.yml" type:"path" short:"c"`
	Debug  bool   `help:"Enable debug logging regardless of log-level."`
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	kong.Parse(&cli,
		kong.Name("tictactoe-rooms"),
		kong.Description("Server-authoritative tic-tac-toe rooms over websocket."),
		kong.UsageOnError(),
	)

	conf := config.MustLoad(cli.Config)
	logger := initLogger(conf, cli.Debug)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger.
func initLogger(conf *config.Config, debug bool) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
