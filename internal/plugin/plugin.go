// Package plugin defines the serving/transform plugin model consumed by the
// dev server. The config resolver controls plugin identity and order only;
// plugin behavior runs inside the serving pipeline.
package plugin

import "context"

// TransformFunc rewrites the body of a served module. Returning the input
// unchanged is valid and still forces the pipeline to parse the module.
type TransformFunc func(ctx context.Context, path string, body string) (string, error)

// ServeFunc produces a response body for a requested path, or "" to fall
// through to the next plugin.
type ServeFunc func(ctx context.Context, path string) (string, error)

// CommandFunc handles a test-session command sent from the browser. The
// second return value reports whether the plugin handled the command.
type CommandFunc func(ctx context.Context, command string, payload map[string]any) (any, bool, error)

// ResolveImportFunc rewrites a bare import specifier to a servable path, or
// "" to leave it untouched.
type ResolveImportFunc func(ctx context.Context, source string, specifier string) (string, error)

// Plugin is one entry in the serving pipeline. Hooks are optional; a Plugin
// with only a Name is a valid no-op.
type Plugin struct {
	Name           string
	Transform      TransformFunc
	Serve          ServeFunc
	ExecuteCommand CommandFunc
	ResolveImport  ResolveImportFunc
}

// NodeResolveOptions tunes the node-resolution plugin. The zero value works
// for a plain node_modules layout.
type NodeResolveOptions struct {
	Extensions       []string
	MainFields       []string
	ExportConditions []string
}
