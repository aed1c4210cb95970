package config

import (
	"fmt"

	"github.com/manolakis/webrunner/internal/config/styles"
	"github.com/manolakis/webrunner/internal/fancy"
)

// String returns a pretty-printed tree representation of the resolved config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a resolved Config into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Webrunner Config"))

	serverTree := t.Child(styles.FormatSection("Server", 0))
	serverTree.Child(fmt.Sprintf("Address: %s://%s:%d", cfg.Protocol, cfg.Hostname, cfg.Port))
	serverTree.Child(fmt.Sprintf("Root dir: %s", fancy.PathText(cfg.RootDir)))

	runTree := t.Child(styles.FormatSection("Run", 0))
	runTree.Child(fmt.Sprintf("Concurrent browsers: %d", cfg.ConcurrentBrowsers))
	runTree.Child(fmt.Sprintf("Concurrency: %d", cfg.Concurrency))
	runTree.Child(fmt.Sprintf("Watch: %t", cfg.Watch))
	runTree.Child(fmt.Sprintf("Coverage: %t", cfg.Coverage))
	runTree.Child(fmt.Sprintf("Manual: %t", cfg.Manual))

	timeoutsTree := t.Child(styles.FormatSection("Timeouts", 0))
	timeoutsTree.Child(fmt.Sprintf("Browser start: %s", cfg.BrowserStartTimeout))
	timeoutsTree.Child(fmt.Sprintf("Tests start: %s", cfg.TestsStartTimeout))
	timeoutsTree.Child(fmt.Sprintf("Tests finish: %s", cfg.TestsFinishTimeout))

	browsersTree := t.Child(styles.FormatSection("Browsers", len(cfg.Browsers)))
	for _, b := range cfg.Browsers {
		browsersTree.Child(styles.LauncherName(b.String()))
	}

	pluginsTree := t.Child(styles.FormatSection("Plugins", len(cfg.Plugins)))
	for _, p := range cfg.Plugins {
		pluginsTree.Child(styles.PluginName(p.Name))
	}

	reportersTree := t.Child(styles.FormatSection("Reporters", len(cfg.Reporters)))
	for _, r := range cfg.Reporters {
		reportersTree.Child(styles.ReporterName(r.Name))
	}

	frameworkTree := t.Child(styles.FormatSection("Test framework", 0))
	frameworkTree.Child(fmt.Sprintf("Path: %s", fancy.PathText(cfg.TestFramework.Path)))

	if len(cfg.Groups) > 0 {
		groupsTree := t.Child(styles.FormatSection("Groups", len(cfg.Groups)))
		for _, entry := range cfg.Groups {
			if entry.Inline != nil {
				groupsTree.Child(styles.GroupName(entry.Inline.Name))
				continue
			}
			groupsTree.Child(fmt.Sprintf("pattern: %s", fancy.PathText(entry.Pattern)))
		}
	}

	return t.String()
}
