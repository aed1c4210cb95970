// Package launcher provides opaque browser launcher handles. Exactly one
// launcher family is active per resolution; the session machinery consumes
// the handles verbatim.
package launcher

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Family is the mutually exclusive choice of browser automation backend.
type Family string

const (
	FamilyDefault    Family = "default"
	FamilyPuppeteer  Family = "puppeteer"
	FamilyPlaywright Family = "playwright"
)

// Launcher is a handle for one launchable browser. The ID ties sessions back
// to their launcher across a run.
type Launcher struct {
	ID      uuid.UUID
	Family  Family
	Product string
}

func (l *Launcher) String() string {
	return fmt.Sprintf("%s/%s", l.Family, l.Product)
}

func newLauncher(family Family, product string) *Launcher {
	return &Launcher{
		ID:      uuid.Must(uuid.NewV4()),
		Family:  family,
		Product: product,
	}
}

// Default returns the built-in launcher set: one locally installed Chrome.
func Default() []*Launcher {
	return []*Launcher{newLauncher(FamilyDefault, "chrome")}
}

// Puppeteer returns puppeteer-backed launchers, optionally scoped to the
// given product names. With no names it launches puppeteer's bundled Chromium.
func Puppeteer(products []string) []*Launcher {
	if len(products) == 0 {
		products = []string{"chromium"}
	}
	return family(FamilyPuppeteer, products)
}

// Playwright returns playwright-backed launchers, optionally scoped to the
// given product names. With no names it launches chromium.
func Playwright(products []string) []*Launcher {
	if len(products) == 0 {
		products = []string{"chromium"}
	}
	return family(FamilyPlaywright, products)
}

func family(f Family, products []string) []*Launcher {
	launchers := make([]*Launcher, 0, len(products))
	for _, product := range products {
		launchers = append(launchers, newLauncher(f, product))
	}
	return launchers
}
