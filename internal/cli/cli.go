// Package cli provides the command-line interface for skillrouter.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/klauern/skillrouter/internal/cliui"
	"github.com/klauern/skillrouter/internal/config"
	"github.com/klauern/skillrouter/internal/logging"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "skillrouter",
		Usage:   "Route a query to the right Claude skills and assemble their context",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored status output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("no-color") {
				cliui.DisableColors()
			}
			return ctx, configureLogging(cmd)
		},
		Commands: []*cli.Command{
			versionCommand(),
			routeCommand(),
			serveCommand(),
			reloadCommand(),
		},
	}
	return app.Run(ctx, args)
}

// configureLogging sets up the logging level and format. Config.Logging
// (SKILLROUTER_LOG_LEVEL/SKILLROUTER_LOG_JSON, already applied by
// config.Load) sets the baseline; --verbose/--debug, being the more specific
// per-invocation intent, override it.
func configureLogging(cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := logging.DefaultOptions()
	if level, ok := cfg.LevelValue(); ok {
		opts.Level = slog.Level(level)
	}
	opts.JSON = cfg.Logging.JSON

	if cmd.Bool("debug") {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	} else if cmd.Bool("verbose") {
		opts.Level = slog.LevelInfo
	}

	logger := logging.New(opts)
	logging.SetDefault(logger)

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return nil
}
