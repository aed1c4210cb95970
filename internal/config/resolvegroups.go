package config

import (
	"context"
	"fmt"

	"github.com/manolakis/webrunner/internal/config/errz"
	"github.com/manolakis/webrunner/internal/config/groups"
)

// resolveGroups expands the merged groups specification into a flat ordered
// list and applies the CLI group focus. Inline entries come first, glob
// results after them; neither set is deduplicated by name, so a lookup takes
// the first match in scan order. Focusing a group clears the root files on
// the merged partial so file selection flows only through the group.
func resolveGroups(
	ctx context.Context,
	merged *Partial,
	focus string,
	collector groups.Collector,
) ([]groups.GroupConfig, error) {
	inline := []groups.GroupConfig{}
	patterns := []string{}
	for _, entry := range merged.Groups {
		switch {
		case entry.Inline != nil:
			inline = append(inline, *entry.Inline)
		case entry.Pattern != "":
			patterns = append(patterns, entry.Pattern)
		}
	}

	resolved := inline
	if len(patterns) > 0 {
		collected, err := collector.Collect(ctx, patterns)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, collected...)
	}

	for _, group := range resolved {
		if group.Name == groups.ReservedName {
			return nil, fmt.Errorf("%w", errz.ErrReservedGroupName)
		}
	}

	if focus == "" {
		return resolved, nil
	}

	// Focusing "default" unfocuses all named groups; the root config becomes
	// the sole runnable target.
	if focus == groups.ReservedName {
		return []groups.GroupConfig{}, nil
	}

	for _, group := range resolved {
		if group.Name != focus {
			continue
		}
		if len(group.Files) == 0 {
			group.Files = merged.Files
		}
		merged.Files = nil
		return []groups.GroupConfig{group}, nil
	}

	return nil, fmt.Errorf("%w: %q", errz.ErrGroupNotFound, focus)
}
