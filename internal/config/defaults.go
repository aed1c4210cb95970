package config

import (
	"os"
	"runtime"
)

// Built-in defaults, the lowest-precedence configuration source.
const (
	DefaultProtocol = "http"
	DefaultHostname = "localhost"

	// DefaultPort is the preferred candidate handed to the port finder when
	// no port is configured.
	DefaultPort = 8000

	DefaultConcurrentBrowsers = 2

	// Timeout defaults, in milliseconds.
	DefaultBrowserStartTimeoutMs = 30000
	DefaultTestsStartTimeoutMs   = 20000
	DefaultTestsFinishTimeoutMs  = 20000

	// DefaultTestFrameworkPath is the mocha-style adapter served to the
	// browser when no framework is configured.
	DefaultTestFrameworkPath = "/node_modules/@web/test-runner-mocha/dist/autorun.js"
)

// DefaultConcurrency returns the per-browser test file concurrency default,
// half the available CPUs with a floor of one.
func DefaultConcurrency() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Defaults builds the built-in defaults source. The root dir defaults to the
// working directory; if that cannot be determined it stays unset and
// resolution fails with ErrMissingRootDir.
func Defaults() *Partial {
	p := &Partial{
		Protocol:            ptr(DefaultProtocol),
		Hostname:            ptr(DefaultHostname),
		ConcurrentBrowsers:  ptr(DefaultConcurrentBrowsers),
		Concurrency:         ptr(DefaultConcurrency()),
		BrowserStartTimeout: ptr(DefaultBrowserStartTimeoutMs),
		TestsStartTimeout:   ptr(DefaultTestsStartTimeoutMs),
		TestsFinishTimeout:  ptr(DefaultTestsFinishTimeoutMs),
		Watch:               ptr(false),
		PreserveSymlinks:    ptr(false),
		BrowserLogs:         ptr(true),
		Coverage:            ptr(false),
		StaticLogging:       ptr(false),
		Manual:              ptr(false),
		Open:                ptr(false),
		Debug:               ptr(false),
	}

	if cwd, err := os.Getwd(); err == nil {
		p.RootDir = ptr(cwd)
	}

	return p
}

func ptr[T any](v T) *T {
	return &v
}
