package config

import (
	"errors"
	"fmt"

	"github.com/manolakis/webrunner/internal/config/errz"
)

// Recognized keys grouped by expected primitive type. Keys not listed here
// pass through unchecked, so configs written for newer versions still load.
var (
	stringKeys = []string{
		"rootDir",
		"hostname",
		"protocol",
	}

	numberKeys = []string{
		"port",
		"concurrency",
		"concurrentBrowsers",
		"browserStartTimeout",
		"testsStartTimeout",
		"testsFinishTimeout",
	}

	booleanKeys = []string{
		"watch",
		"preserveSymlinks",
		"browserLogs",
		"coverage",
		"staticLogging",
		"manual",
		"open",
		"debug",
		"puppeteer",
		"playwright",
	}

	// Keys accepting either a single string or an array of strings.
	arrayOrStringKeys = []string{
		"esbuildTarget",
		"files",
	}
)

// ValidatePartialMap type-checks the recognized keys of a raw decoded config.
// Only keys that are present and non-nil are checked; absence is never an
// error. Every mismatch is reported, joined into one error.
func ValidatePartialMap(raw map[string]any) error {
	errs := []error{}

	for _, key := range stringKeys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if _, ok := value.(string); !ok {
			errs = append(errs, keyError(key, "string"))
		}
	}

	for _, key := range numberKeys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if !isNumber(value) {
			errs = append(errs, keyError(key, "number"))
		}
	}

	for _, key := range booleanKeys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if _, ok := value.(bool); !ok {
			errs = append(errs, keyError(key, "boolean"))
		}
	}

	for _, key := range arrayOrStringKeys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if !isStringOrStringArray(value) {
			errs = append(errs, keyError(key, "string or array of strings"))
		}
	}

	return errors.Join(errs...)
}

func keyError(key, expected string) error {
	return fmt.Errorf("%w: %s should be of type %s", errz.ErrConfigValidation, key, expected)
}

// isNumber accepts the numeric shapes TOML and YAML decoders produce.
func isNumber(value any) bool {
	switch value.(type) {
	case int, int64, float64:
		return true
	default:
		return false
	}
}

func isStringOrStringArray(value any) bool {
	switch v := value.(type) {
	case string:
		return true
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	case []string:
		return true
	default:
		return false
	}
}
