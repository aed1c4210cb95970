package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/manolakis/webrunner/internal/config"
	"github.com/manolakis/webrunner/internal/config/groups"
	"github.com/urfave/cli/v3"
)

// defaultConfigFile is picked up from the root dir when --config is omitted.
const defaultConfigFile = "webrunner.toml"

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Resolve and validate the run configuration",
		Flags: append(runnerFlags(),
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the resolved configuration",
			},
		),
		Suggest: true,
		Action:  validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" && cmd.Args().Len() > 0 {
		configPath = cmd.Args().Get(0)
	}
	if configPath == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configPath = defaultConfigFile
		}
	}

	cliArgs := cliArgsFromCmd(cmd)

	var (
		cfg          *config.Config
		groupConfigs []groups.GroupConfig
		err          error
	)
	if configPath != "" {
		cfg, groupConfigs, err = config.NewConfig(ctx, configPath, cliArgs)
	} else {
		cfg, groupConfigs, err = config.Resolve(ctx, nil, cliArgs)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	if configPath != "" {
		fmt.Printf("Configuration file %s is valid\n", configPath)
	} else {
		fmt.Println("Configuration is valid")
	}

	if cmd.Bool("tree") {
		fmt.Println(cfg)
		return nil
	}

	fmt.Println(renderConfigSummary(configPath, cfg, groupConfigs))
	return nil
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config, groupConfigs []groups.GroupConfig) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	if path != "" {
		summary.WriteString(fmt.Sprintf("- Path: %s\n", path))
	}
	summary.WriteString(fmt.Sprintf("- Address: %s://%s:%d\n", cfg.Protocol, cfg.Hostname, cfg.Port))
	summary.WriteString(fmt.Sprintf("- Root dir: %s\n", cfg.RootDir))
	summary.WriteString(fmt.Sprintf("- Browsers: %d\n", len(cfg.Browsers)))
	summary.WriteString(fmt.Sprintf("- Plugins: %d\n", len(cfg.Plugins)))
	summary.WriteString(fmt.Sprintf("- Groups: %d\n", len(groupConfigs)))
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
