package config

import (
	"fmt"

	"github.com/manolakis/webrunner/internal/config/errz"
	"github.com/manolakis/webrunner/internal/launcher"
)

// LauncherFactories are the browser launcher constructors used during
// negotiation. Tests substitute stubs; production uses the launcher package.
type LauncherFactories struct {
	Default    func() []*launcher.Launcher
	Puppeteer  func(products []string) []*launcher.Launcher
	Playwright func(products []string) []*launcher.Launcher
}

// DefaultLauncherFactories returns the real launcher constructors.
func DefaultLauncherFactories() LauncherFactories {
	return LauncherFactories{
		Default:    launcher.Default,
		Puppeteer:  launcher.Puppeteer,
		Playwright: launcher.Playwright,
	}
}

// negotiateLaunchers selects the active launcher set. The puppeteer and
// playwright flags are mutually exclusive with manually configured browsers;
// a CLI browsers list without either flag is meaningless. With nothing
// configured the single built-in launcher is used.
func negotiateLaunchers(
	merged *Partial,
	cli *CliArgs,
	factories LauncherFactories,
) ([]*launcher.Launcher, error) {
	usePuppeteer := cli.Puppeteer || boolValue(merged.Puppeteer)
	usePlaywright := cli.Playwright || boolValue(merged.Playwright)

	switch {
	case usePuppeteer:
		if len(merged.Browsers) > 0 {
			return nil, fmt.Errorf(
				"%w: browsers are configured manually, the puppeteer flag cannot be used",
				errz.ErrConflictingLauncher,
			)
		}
		return factories.Puppeteer(cli.Browsers), nil

	case usePlaywright:
		if len(merged.Browsers) > 0 {
			return nil, fmt.Errorf(
				"%w: browsers are configured manually, the playwright flag cannot be used",
				errz.ErrConflictingLauncher,
			)
		}
		return factories.Playwright(cli.Browsers), nil

	case len(cli.Browsers) > 0:
		return nil, fmt.Errorf(
			"%w: a browsers list requires the puppeteer or playwright flag",
			errz.ErrInvalidLauncherSelection,
		)

	case len(merged.Browsers) == 0:
		return factories.Default(), nil

	default:
		return merged.Browsers, nil
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
