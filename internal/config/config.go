package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/manolakis/webrunner/internal/config/groups"
	"github.com/manolakis/webrunner/internal/launcher"
	"github.com/manolakis/webrunner/internal/plugin"
	"github.com/manolakis/webrunner/internal/reporter"
)

// Config is the fully resolved configuration driving one test runner
// invocation. RootDir is always absolute and Port is always concrete once
// resolution succeeds. The timeout fields are consumed by downstream session
// management, not enforced here.
type Config struct {
	RootDir  string
	Protocol string
	Hostname string
	Port     int

	ConcurrentBrowsers int
	Concurrency        int

	BrowserStartTimeout time.Duration
	TestsStartTimeout   time.Duration
	TestsFinishTimeout  time.Duration

	Watch            bool
	PreserveSymlinks bool
	BrowserLogs      bool
	Coverage         bool
	StaticLogging    bool
	Manual           bool
	Open             bool
	Debug            bool

	Files         []string
	EsbuildTarget []string

	Plugins    []*plugin.Plugin
	Middleware []Middleware
	Browsers   []*launcher.Launcher

	TestFramework TestFramework
	Reporters     []*reporter.Reporter
	Logger        *slog.Logger

	// Groups holds the raw groups specification for inspection; the resolved
	// group list is returned alongside the config.
	Groups []groups.Entry
}

// NewConfig loads a user config from a TOML file and resolves it together
// with the given CLI arguments.
func NewConfig(
	ctx context.Context,
	filePath string,
	cli *CliArgs,
	opts ...Option,
) (*Config, []groups.GroupConfig, error) {
	partial, err := NewPartialFromFile(filePath)
	if err != nil {
		return nil, nil, err
	}
	return Resolve(ctx, partial, cli, opts...)
}
