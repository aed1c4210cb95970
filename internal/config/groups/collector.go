package groups

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/manolakis/webrunner/internal/config/errz"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Collector expands glob patterns into group configurations.
type Collector interface {
	Collect(ctx context.Context, patterns []string) ([]GroupConfig, error)
}

// FileCollector reads group config files matched by glob patterns relative to
// a root directory. TOML and YAML files are supported.
type FileCollector struct {
	rootDir string
}

// NewFileCollector creates a collector rooted at rootDir.
func NewFileCollector(rootDir string) *FileCollector {
	return &FileCollector{rootDir: rootDir}
}

// Collect walks the root directory once per call and returns the groups
// parsed from every file matching any of the patterns. Files are visited in
// lexical walk order, so results are deterministic for a given tree.
func (c *FileCollector) Collect(ctx context.Context, patterns []string) ([]GroupConfig, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pattern %q: %w", errz.ErrFailedToLoadGroup, pattern, err)
		}
		matchers = append(matchers, g)
	}

	var collected []GroupConfig
	err := filepath.WalkDir(c.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			// node_modules is never a group config source
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(c.rootDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for _, m := range matchers {
			if m.Match(rel) {
				group, err := parseGroupFile(path)
				if err != nil {
					return err
				}
				collected = append(collected, group)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return collected, nil
}

// parseGroupFile decodes one group config file, dispatching on extension.
func parseGroupFile(path string) (GroupConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GroupConfig{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadGroup, err)
	}

	var group GroupConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &group)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &group)
	default:
		return GroupConfig{}, fmt.Errorf("%w: unsupported format: %s", errz.ErrFailedToLoadGroup, path)
	}
	if err != nil {
		return GroupConfig{}, fmt.Errorf("%w: %s: %w", errz.ErrFailedToLoadGroup, path, err)
	}

	if group.Name == "" {
		return GroupConfig{}, fmt.Errorf("%w: %s: missing group name", errz.ErrFailedToLoadGroup, path)
	}

	return group, nil
}
