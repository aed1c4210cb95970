package config

import (
	"log/slog"
	"net/http"

	"github.com/manolakis/webrunner/internal/config/groups"
	"github.com/manolakis/webrunner/internal/launcher"
	"github.com/manolakis/webrunner/internal/plugin"
	"github.com/manolakis/webrunner/internal/reporter"
)

// Middleware wraps dev-server request handling.
type Middleware func(next http.Handler) http.Handler

// TestFramework describes the browser-side test framework adapter: the path
// served to the browser plus adapter-specific options.
type TestFramework struct {
	Path   string
	Config map[string]any
}

// NodeResolve enables node-module resolution, optionally tuned.
type NodeResolve struct {
	Enabled bool
	Options *plugin.NodeResolveOptions
}

// Partial is one configuration source. Nil fields are "not set": the merger
// only applies fields a source defines. Slices and maps are replaced
// wholesale on merge, never concatenated.
type Partial struct {
	RootDir  *string
	Protocol *string
	Hostname *string
	Port     *int

	ConcurrentBrowsers *int
	Concurrency        *int

	// Timeouts are configured in milliseconds and surfaced as durations on
	// the resolved config.
	BrowserStartTimeout *int
	TestsStartTimeout   *int
	TestsFinishTimeout  *int

	Watch            *bool
	PreserveSymlinks *bool
	BrowserLogs      *bool
	Coverage         *bool
	StaticLogging    *bool
	Manual           *bool
	Open             *bool
	Debug            *bool

	Puppeteer  *bool
	Playwright *bool

	Files         []string
	EsbuildTarget []string
	NodeResolve   *NodeResolve

	Plugins    []*plugin.Plugin
	Middleware []Middleware
	Browsers   []*launcher.Launcher
	Groups     []groups.Entry

	TestFramework *TestFramework
	Reporters     []*reporter.Reporter
	Logger        *slog.Logger
}

// CliArgs carries the CLI-specific controls alongside plain config overrides.
// It is built once per invocation and discarded after resolution.
type CliArgs struct {
	// Group focuses the run on a single named group, or on the root config
	// when set to the reserved name "default".
	Group string

	Puppeteer  bool
	Playwright bool

	// Browsers narrows the launcher family to the named products. It is only
	// meaningful together with the puppeteer or playwright flag.
	Browsers []string

	Overrides Partial
}

// withoutGroupAware returns a copy with the group-aware fields cleared.
// Groups and browsers have their own resolution paths and must never leak
// into the generic merge.
func (p *Partial) withoutGroupAware() *Partial {
	if p == nil {
		return nil
	}
	stripped := *p
	stripped.Groups = nil
	stripped.Browsers = nil
	return &stripped
}
