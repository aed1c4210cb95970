// Package groups provides the group config model and the glob-based
// collector that expands group file patterns into group configurations.
package groups

// ReservedName is the group name reserved for the root config. No group file
// or inline group may use it; the CLI uses it to unfocus all named groups.
const ReservedName = "default"

// GroupConfig is a named overlay on the root run config. A focused group
// narrows one run to its files and browsers.
type GroupConfig struct {
	Name        string   `toml:"name"        yaml:"name"`
	Files       []string `toml:"files"       yaml:"files"`
	Browsers    []string `toml:"browsers"    yaml:"browsers"`
	Concurrency *int     `toml:"concurrency" yaml:"concurrency"`
}

// Entry is one element of a groups specification: either an inline group
// object or a glob pattern pointing at group config files.
type Entry struct {
	Pattern string
	Inline  *GroupConfig
}

// PatternEntry wraps a glob pattern as an Entry.
func PatternEntry(pattern string) Entry {
	return Entry{Pattern: pattern}
}

// InlineEntry wraps an inline group as an Entry.
func InlineEntry(g GroupConfig) Entry {
	return Entry{Inline: &g}
}
