package main

import (
	"github.com/manolakis/webrunner/internal/config"
	"github.com/urfave/cli/v3"
)

// runnerFlags are the config-resolution flags shared by commands that build
// a CliArgs from the command line.
func runnerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:  "root-dir",
			Usage: "Root directory to serve files from",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Port for the control server",
		},
		&cli.StringSliceFlag{
			Name:  "files",
			Usage: "Test files glob patterns",
		},
		&cli.StringFlag{
			Name:    "group",
			Usage:   "Run only the group with this name, or \"default\" for the root config",
			Aliases: []string{"g"},
		},
		&cli.BoolFlag{
			Name:  "puppeteer",
			Usage: "Run tests in browsers launched with puppeteer",
		},
		&cli.BoolFlag{
			Name:  "playwright",
			Usage: "Run tests in browsers launched with playwright",
		},
		&cli.StringSliceFlag{
			Name:  "browsers",
			Usage: "Browser products to launch, requires --puppeteer or --playwright",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "Re-run tests on file changes",
		},
		&cli.BoolFlag{
			Name:  "coverage",
			Usage: "Collect test coverage",
		},
		&cli.BoolFlag{
			Name:  "manual",
			Usage: "Keep the server open for manually visiting browsers",
		},
		&cli.BoolFlag{
			Name:  "open",
			Usage: "Open the browser after starting",
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "Number of test files to run concurrently per browser",
		},
		&cli.IntFlag{
			Name:  "concurrent-browsers",
			Usage: "Number of browsers to run concurrently",
		},
		&cli.BoolFlag{
			Name:  "preserve-symlinks",
			Usage: "Preserve symlinks when resolving imports",
		},
		&cli.BoolFlag{
			Name:  "node-resolve",
			Usage: "Resolve bare module imports using node resolution",
		},
		&cli.StringSliceFlag{
			Name:  "esbuild-target",
			Usage: "JS language targets to downlevel to, e.g. es2020",
		},
		&cli.BoolFlag{
			Name:  "static-logging",
			Usage: "Disable rewriting the dynamic progress bar",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Log debug messages",
		},
	}
}

// cliArgsFromCmd translates parsed flags into CliArgs. Only flags the user
// actually set become overrides, so defaults and config file values are not
// shadowed by flag zero values.
func cliArgsFromCmd(cmd *cli.Command) *config.CliArgs {
	args := &config.CliArgs{
		Group:      cmd.String("group"),
		Puppeteer:  cmd.Bool("puppeteer"),
		Playwright: cmd.Bool("playwright"),
		Browsers:   cmd.StringSlice("browsers"),
	}

	overrides := &args.Overrides
	if cmd.IsSet("root-dir") {
		overrides.RootDir = ptr(cmd.String("root-dir"))
	}
	if cmd.IsSet("port") {
		overrides.Port = ptr(int(cmd.Int("port")))
	}
	if cmd.IsSet("files") {
		overrides.Files = cmd.StringSlice("files")
	}
	if cmd.IsSet("watch") {
		overrides.Watch = ptr(cmd.Bool("watch"))
	}
	if cmd.IsSet("coverage") {
		overrides.Coverage = ptr(cmd.Bool("coverage"))
	}
	if cmd.IsSet("manual") {
		overrides.Manual = ptr(cmd.Bool("manual"))
	}
	if cmd.IsSet("open") {
		overrides.Open = ptr(cmd.Bool("open"))
	}
	if cmd.IsSet("concurrency") {
		overrides.Concurrency = ptr(int(cmd.Int("concurrency")))
	}
	if cmd.IsSet("concurrent-browsers") {
		overrides.ConcurrentBrowsers = ptr(int(cmd.Int("concurrent-browsers")))
	}
	if cmd.IsSet("preserve-symlinks") {
		overrides.PreserveSymlinks = ptr(cmd.Bool("preserve-symlinks"))
	}
	if cmd.IsSet("node-resolve") {
		overrides.NodeResolve = &config.NodeResolve{Enabled: cmd.Bool("node-resolve")}
	}
	if cmd.IsSet("esbuild-target") {
		overrides.EsbuildTarget = cmd.StringSlice("esbuild-target")
	}
	if cmd.IsSet("static-logging") {
		overrides.StaticLogging = ptr(cmd.Bool("static-logging"))
	}
	if cmd.IsSet("debug") {
		overrides.Debug = ptr(cmd.Bool("debug"))
	}

	return args
}

func ptr[T any](v T) *T {
	return &v
}
