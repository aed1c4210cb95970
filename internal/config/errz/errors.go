// Package errz provides shared error definitions for the config package and its subpackages.
package errz

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadConfig = errors.New("failed to load config")
	ErrFailedToLoadGroup  = errors.New("failed to load group config")
)

// Validation specific errors
var (
	ErrConfigValidation = errors.New("invalid config value")
	ErrMissingRootDir   = errors.New("root dir missing or not a string")
)

// Group resolution specific errors
var (
	ErrReservedGroupName = errors.New(`group name "default" is reserved`)
	ErrGroupNotFound     = errors.New("group not found")
)

// Launcher negotiation specific errors
var (
	ErrConflictingLauncher      = errors.New("conflicting launcher selection")
	ErrInvalidLauncherSelection = errors.New("browsers selected without a launcher flag")
)
