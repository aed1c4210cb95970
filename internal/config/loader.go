package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/manolakis/webrunner/internal/config/errz"
	"github.com/manolakis/webrunner/internal/config/groups"
	"github.com/manolakis/webrunner/internal/plugin"
	"github.com/manolakis/webrunner/internal/reporter"
	"github.com/pelletier/go-toml/v2"
)

// Loader handles loading a user configuration from TOML. The raw decoded map
// feeds the typed-key validation pass before the typed partial is built, so
// a wrongly typed known key fails loading while unknown keys pass through.
type Loader struct {
	raw     map[string]any
	partial *Partial
	isValid bool
}

// NewLoaderFromFilePath loads a user configuration from a TOML file
func NewLoaderFromFilePath(filePath string) (*Loader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: config file does not exist: %s", errz.ErrFailedToLoadConfig, filePath)
	}

	ext := filepath.Ext(filePath)
	if ext != ".toml" {
		return nil, fmt.Errorf("%w: unsupported config format: %s, only .toml is supported", errz.ErrFailedToLoadConfig, ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	return NewLoaderFromBytes(data)
}

// NewLoaderFromReader loads a user configuration from an io.Reader providing TOML data
func NewLoaderFromReader(reader io.Reader) (*Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	return NewLoaderFromBytes(data)
}

// NewLoaderFromBytes loads a user configuration from TOML bytes
func NewLoaderFromBytes(data []byte) (*Loader, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	return &Loader{raw: raw}, nil
}

// Validate type-checks the known keys and builds the typed partial.
func (l *Loader) Validate() error {
	if err := ValidatePartialMap(l.raw); err != nil {
		return err
	}

	partial, err := partialFromMap(l.raw)
	if err != nil {
		return err
	}

	l.partial = partial
	l.isValid = true
	return nil
}

// GetPartial returns the typed partial, or nil before successful validation.
func (l *Loader) GetPartial() *Partial {
	if !l.isValid {
		return nil
	}
	return l.partial
}

// NewPartialFromFile loads and validates a user configuration file.
func NewPartialFromFile(filePath string) (*Partial, error) {
	l, err := NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, err
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l.GetPartial(), nil
}

// partialFromMap converts the raw decoded config into a typed Partial.
// Types were already checked for known keys; unknown keys are dropped.
func partialFromMap(raw map[string]any) (*Partial, error) {
	p := &Partial{}

	p.RootDir = stringAt(raw, "rootDir")
	p.Protocol = stringAt(raw, "protocol")
	p.Hostname = stringAt(raw, "hostname")

	p.Port = intAt(raw, "port")
	p.Concurrency = intAt(raw, "concurrency")
	p.ConcurrentBrowsers = intAt(raw, "concurrentBrowsers")
	p.BrowserStartTimeout = intAt(raw, "browserStartTimeout")
	p.TestsStartTimeout = intAt(raw, "testsStartTimeout")
	p.TestsFinishTimeout = intAt(raw, "testsFinishTimeout")

	p.Watch = boolAt(raw, "watch")
	p.PreserveSymlinks = boolAt(raw, "preserveSymlinks")
	p.BrowserLogs = boolAt(raw, "browserLogs")
	p.Coverage = boolAt(raw, "coverage")
	p.StaticLogging = boolAt(raw, "staticLogging")
	p.Manual = boolAt(raw, "manual")
	p.Open = boolAt(raw, "open")
	p.Debug = boolAt(raw, "debug")
	p.Puppeteer = boolAt(raw, "puppeteer")
	p.Playwright = boolAt(raw, "playwright")

	p.Files = stringListAt(raw, "files")
	p.EsbuildTarget = stringListAt(raw, "esbuildTarget")

	if value, ok := raw["nodeResolve"]; ok && value != nil {
		nodeResolve, err := nodeResolveFromValue(value)
		if err != nil {
			return nil, err
		}
		p.NodeResolve = nodeResolve
	}

	if value, ok := raw["groups"]; ok && value != nil {
		entries, err := groupEntriesFromValue(value)
		if err != nil {
			return nil, err
		}
		p.Groups = entries
	}

	if value, ok := raw["testFramework"]; ok && value != nil {
		framework, err := testFrameworkFromValue(value)
		if err != nil {
			return nil, err
		}
		p.TestFramework = framework
	}

	if value, ok := raw["reporters"]; ok && value != nil {
		reporters, err := reportersFromValue(value)
		if err != nil {
			return nil, err
		}
		p.Reporters = reporters
	}

	return p, nil
}

func stringAt(raw map[string]any, key string) *string {
	if v, ok := raw[key].(string); ok {
		return &v
	}
	return nil
}

func intAt(raw map[string]any, key string) *int {
	switch v := raw[key].(type) {
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	}
	return nil
}

func boolAt(raw map[string]any, key string) *bool {
	if v, ok := raw[key].(bool); ok {
		return &v
	}
	return nil
}

// stringListAt reads an array-or-string key, normalizing a single string to
// a one-element list.
func stringListAt(raw map[string]any, key string) []string {
	switch v := raw[key].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}
	return nil
}

// nodeResolveFromValue accepts a boolean toggle or an options table.
func nodeResolveFromValue(value any) (*NodeResolve, error) {
	switch v := value.(type) {
	case bool:
		return &NodeResolve{Enabled: v}, nil
	case map[string]any:
		opts := &plugin.NodeResolveOptions{
			Extensions:       stringListAt(v, "extensions"),
			MainFields:       stringListAt(v, "mainFields"),
			ExportConditions: stringListAt(v, "exportConditions"),
		}
		return &NodeResolve{Enabled: true, Options: opts}, nil
	default:
		return nil, fmt.Errorf("%w: nodeResolve should be of type boolean or table", errz.ErrConfigValidation)
	}
}

// groupEntriesFromValue accepts a single pattern string or a mixed list of
// pattern strings and inline group tables.
func groupEntriesFromValue(value any) ([]groups.Entry, error) {
	switch v := value.(type) {
	case string:
		return []groups.Entry{groups.PatternEntry(v)}, nil
	case []any:
		entries := make([]groups.Entry, 0, len(v))
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				entries = append(entries, groups.PatternEntry(entry))
			case map[string]any:
				group, err := groupFromMap(entry)
				if err != nil {
					return nil, err
				}
				entries = append(entries, groups.InlineEntry(group))
			default:
				return nil, fmt.Errorf("%w: groups entries should be strings or tables", errz.ErrConfigValidation)
			}
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: groups should be of type string or array", errz.ErrConfigValidation)
	}
}

func groupFromMap(raw map[string]any) (groups.GroupConfig, error) {
	group := groups.GroupConfig{
		Files:       stringListAt(raw, "files"),
		Browsers:    stringListAt(raw, "browsers"),
		Concurrency: intAt(raw, "concurrency"),
	}
	name := stringAt(raw, "name")
	if name == nil || *name == "" {
		return groups.GroupConfig{}, fmt.Errorf("%w: inline group is missing a name", errz.ErrConfigValidation)
	}
	group.Name = *name
	return group, nil
}

func testFrameworkFromValue(value any) (*TestFramework, error) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: testFramework should be of type table", errz.ErrConfigValidation)
	}
	framework := &TestFramework{}
	if path := stringAt(raw, "path"); path != nil {
		framework.Path = *path
	}
	if cfg, ok := raw["config"].(map[string]any); ok {
		framework.Config = cfg
	}
	return framework, nil
}

func reportersFromValue(value any) ([]*reporter.Reporter, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: reporters should be of type array", errz.ErrConfigValidation)
	}
	reporters := make([]*reporter.Reporter, 0, len(list))
	for _, item := range list {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: reporters entries should be strings", errz.ErrConfigValidation)
		}
		reporters = append(reporters, &reporter.Reporter{Name: name})
	}
	return reporters, nil
}
