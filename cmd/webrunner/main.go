package main

import (
	"context"
	"fmt"
	"os"

	"github.com/manolakis/webrunner/internal/logging"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "webrunner",
		Version: Version,
		Usage:   "Browser-based test runner",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to a file instead of stderr",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if output := cmd.String("log-file"); output != "" {
				return ctx, logging.SetupLoggerTo(cmd.String("log-level"), output)
			}
			logging.SetupLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			versionCmd,
			newValidateCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
