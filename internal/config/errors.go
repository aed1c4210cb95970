package config

import "github.com/manolakis/webrunner/internal/config/errz"

// Re-exported for callers that only import the config package.
var (
	ErrFailedToLoadConfig       = errz.ErrFailedToLoadConfig
	ErrConfigValidation         = errz.ErrConfigValidation
	ErrMissingRootDir           = errz.ErrMissingRootDir
	ErrReservedGroupName        = errz.ErrReservedGroupName
	ErrGroupNotFound            = errz.ErrGroupNotFound
	ErrConflictingLauncher      = errz.ErrConflictingLauncher
	ErrInvalidLauncherSelection = errz.ErrInvalidLauncherSelection
)
