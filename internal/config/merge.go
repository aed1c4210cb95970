package config

// Merge combines partial configuration sources in order: for each field, the
// last source that defines it wins. Scalars, slices, and maps are replaced
// wholesale; an empty non-nil slice from a later source discards an earlier
// one entirely. Nil sources are skipped.
func Merge(sources ...*Partial) *Partial {
	merged := &Partial{}
	for _, src := range sources {
		if src == nil {
			continue
		}
		overlay(merged, src)
	}
	return merged
}

// overlay applies every defined field of src on top of dst.
func overlay(dst, src *Partial) {
	if src.RootDir != nil {
		dst.RootDir = src.RootDir
	}
	if src.Protocol != nil {
		dst.Protocol = src.Protocol
	}
	if src.Hostname != nil {
		dst.Hostname = src.Hostname
	}
	if src.Port != nil {
		dst.Port = src.Port
	}
	if src.ConcurrentBrowsers != nil {
		dst.ConcurrentBrowsers = src.ConcurrentBrowsers
	}
	if src.Concurrency != nil {
		dst.Concurrency = src.Concurrency
	}
	if src.BrowserStartTimeout != nil {
		dst.BrowserStartTimeout = src.BrowserStartTimeout
	}
	if src.TestsStartTimeout != nil {
		dst.TestsStartTimeout = src.TestsStartTimeout
	}
	if src.TestsFinishTimeout != nil {
		dst.TestsFinishTimeout = src.TestsFinishTimeout
	}
	if src.Watch != nil {
		dst.Watch = src.Watch
	}
	if src.PreserveSymlinks != nil {
		dst.PreserveSymlinks = src.PreserveSymlinks
	}
	if src.BrowserLogs != nil {
		dst.BrowserLogs = src.BrowserLogs
	}
	if src.Coverage != nil {
		dst.Coverage = src.Coverage
	}
	if src.StaticLogging != nil {
		dst.StaticLogging = src.StaticLogging
	}
	if src.Manual != nil {
		dst.Manual = src.Manual
	}
	if src.Open != nil {
		dst.Open = src.Open
	}
	if src.Debug != nil {
		dst.Debug = src.Debug
	}
	if src.Puppeteer != nil {
		dst.Puppeteer = src.Puppeteer
	}
	if src.Playwright != nil {
		dst.Playwright = src.Playwright
	}
	if src.Files != nil {
		dst.Files = src.Files
	}
	if src.EsbuildTarget != nil {
		dst.EsbuildTarget = src.EsbuildTarget
	}
	if src.NodeResolve != nil {
		dst.NodeResolve = src.NodeResolve
	}
	if src.Plugins != nil {
		dst.Plugins = src.Plugins
	}
	if src.Middleware != nil {
		dst.Middleware = src.Middleware
	}
	if src.Browsers != nil {
		dst.Browsers = src.Browsers
	}
	if src.Groups != nil {
		dst.Groups = src.Groups
	}
	if src.TestFramework != nil {
		dst.TestFramework = src.TestFramework
	}
	if src.Reporters != nil {
		dst.Reporters = src.Reporters
	}
	if src.Logger != nil {
		dst.Logger = src.Logger
	}
}
