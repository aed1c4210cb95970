package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/manolakis/webrunner/internal/config/errz"
	"github.com/manolakis/webrunner/internal/config/groups"
	"github.com/manolakis/webrunner/internal/logging"
	"github.com/manolakis/webrunner/internal/netx"
	"github.com/manolakis/webrunner/internal/plugin"
	"github.com/manolakis/webrunner/internal/reporter"
)

// PortFinder returns a free port, preferring the given candidate.
type PortFinder func(ctx context.Context, preferred int) (int, error)

type resolveOptions struct {
	portFinder PortFinder
	collector  groups.Collector
	factories  LauncherFactories
	logger     *slog.Logger
}

// Option overrides a collaborator used during resolution.
type Option func(*resolveOptions)

// WithPortFinder overrides the free-port lookup.
func WithPortFinder(f PortFinder) Option {
	return func(o *resolveOptions) { o.portFinder = f }
}

// WithGroupCollector overrides the glob-based group file collector.
func WithGroupCollector(c groups.Collector) Option {
	return func(o *resolveOptions) { o.collector = c }
}

// WithLauncherFactories overrides the browser launcher constructors.
func WithLauncherFactories(f LauncherFactories) Option {
	return func(o *resolveOptions) { o.factories = f }
}

// WithLogger overrides the logger placed on the resolved config.
func WithLogger(l *slog.Logger) Option {
	return func(o *resolveOptions) { o.logger = l }
}

// Resolve merges defaults, the user config, and CLI overrides into one
// finalized run configuration plus the resolved group list. Any failure
// aborts the whole resolution; no partial config is ever returned. Each call
// builds an independent config, so callers may resolve concurrently.
func Resolve(
	ctx context.Context,
	user *Partial,
	cli *CliArgs,
	opts ...Option,
) (*Config, []groups.GroupConfig, error) {
	o := resolveOptions{
		portFinder: netx.FreePort,
		factories:  DefaultLauncherFactories(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cli == nil {
		cli = &CliArgs{}
	}

	merged := Merge(Defaults(), user, cli.Overrides.withoutGroupAware())

	if merged.RootDir == nil || *merged.RootDir == "" {
		return nil, nil, fmt.Errorf("%w", errz.ErrMissingRootDir)
	}
	rootDir, err := filepath.Abs(*merged.RootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve root dir %q: %w", *merged.RootDir, err)
	}

	port := 0
	if merged.Port != nil {
		port = *merged.Port
	} else {
		port, err = o.portFinder(ctx, DefaultPort)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to assign a port: %w", err)
		}
	}

	collector := o.collector
	if collector == nil {
		collector = groups.NewFileCollector(rootDir)
	}
	groupConfigs, err := resolveGroups(ctx, merged, cli.Group, collector)
	if err != nil {
		return nil, nil, err
	}

	browsers, err := negotiateLaunchers(merged, cli, o.factories)
	if err != nil {
		return nil, nil, err
	}

	framework := resolveTestFramework(merged.TestFramework)

	reporters := merged.Reporters
	if reporters == nil {
		reporters = reporter.Default()
	}

	logger := o.logger
	if logger == nil {
		if merged.Logger != nil {
			logger = merged.Logger
		} else {
			logger = logging.New(boolValue(merged.Debug))
		}
	}

	userPlugins := make([]*plugin.Plugin, len(merged.Plugins))
	copy(userPlugins, merged.Plugins)

	pipelineInput := plugin.PipelineInput{
		UserPlugins:      userPlugins,
		EsbuildTarget:    merged.EsbuildTarget,
		RootDir:          rootDir,
		PreserveSymlinks: boolValue(merged.PreserveSymlinks),
	}
	if merged.NodeResolve != nil && merged.NodeResolve.Enabled {
		pipelineInput.NodeResolve = true
		pipelineInput.NodeResolveOpts = merged.NodeResolve.Options
	}
	plugins := plugin.Assemble(pipelineInput)

	cfg := &Config{
		RootDir:             rootDir,
		Protocol:            *merged.Protocol,
		Hostname:            *merged.Hostname,
		Port:                port,
		ConcurrentBrowsers:  *merged.ConcurrentBrowsers,
		Concurrency:         *merged.Concurrency,
		BrowserStartTimeout: msToDuration(*merged.BrowserStartTimeout),
		TestsStartTimeout:   msToDuration(*merged.TestsStartTimeout),
		TestsFinishTimeout:  msToDuration(*merged.TestsFinishTimeout),
		Watch:               boolValue(merged.Watch),
		PreserveSymlinks:    boolValue(merged.PreserveSymlinks),
		BrowserLogs:         boolValue(merged.BrowserLogs),
		Coverage:            boolValue(merged.Coverage),
		StaticLogging:       boolValue(merged.StaticLogging),
		Manual:              boolValue(merged.Manual),
		Open:                boolValue(merged.Open),
		Debug:               boolValue(merged.Debug),
		Files:               merged.Files,
		EsbuildTarget:       merged.EsbuildTarget,
		Plugins:             plugins,
		Middleware:          merged.Middleware,
		Browsers:            browsers,
		TestFramework:       framework,
		Reporters:           reporters,
		Logger:              logger,
		Groups:              merged.Groups,
	}

	return cfg, groupConfigs, nil
}

// resolveTestFramework fills in the default adapter path and shallow-merges
// adapter options over the defaults.
func resolveTestFramework(user *TestFramework) TestFramework {
	framework := TestFramework{
		Path:   DefaultTestFrameworkPath,
		Config: map[string]any{},
	}
	if user == nil {
		return framework
	}
	if user.Path != "" {
		framework.Path = user.Path
	}
	for key, value := range user.Config {
		framework.Config[key] = value
	}
	return framework
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
