// Package reporter provides reporter descriptors for the test runner. Output
// formatting lives downstream; the config resolver only selects reporters.
package reporter

// Reporter identifies one test reporter plus its options.
type Reporter struct {
	Name    string
	Options map[string]any
}

// Default returns the reporter list used when the config selects none.
func Default() []*Reporter {
	return []*Reporter{{Name: "default"}}
}
