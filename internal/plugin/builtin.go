package plugin

import "context"

// Command names understood by the test-session command plugins.
const (
	CommandSetViewport  = "set-viewport"
	CommandEmulateMedia = "emulate-media"
	CommandSetUserAgent = "set-user-agent"
)

// SyntaxChecker returns a plugin whose transform hands every module back
// unchanged. Its presence forces the pipeline to parse each imported module,
// so syntax errors surface even when no other transform is configured.
func SyntaxChecker() *Plugin {
	return &Plugin{
		Name: "syntax-checker",
		Transform: func(_ context.Context, _ string, body string) (string, error) {
			return body, nil
		},
	}
}

// SetViewport returns the command plugin handling viewport overrides for a
// test session.
func SetViewport() *Plugin {
	return commandPlugin("set-viewport", CommandSetViewport)
}

// EmulateMedia returns the command plugin handling media emulation overrides.
func EmulateMedia() *Plugin {
	return commandPlugin("emulate-media", CommandEmulateMedia)
}

// SetUserAgent returns the command plugin handling user agent overrides.
func SetUserAgent() *Plugin {
	return commandPlugin("set-user-agent", CommandSetUserAgent)
}

func commandPlugin(name, command string) *Plugin {
	return &Plugin{
		Name: name,
		ExecuteCommand: func(_ context.Context, cmd string, payload map[string]any) (any, bool, error) {
			if cmd != command {
				return nil, false, nil
			}
			return payload, true, nil
		},
	}
}

// NodeResolve returns the node-module-resolution plugin. It must run after
// user plugins so user transforms can rewrite imports first.
func NodeResolve(rootDir string, preserveSymlinks bool, opts *NodeResolveOptions) *Plugin {
	if opts == nil {
		opts = &NodeResolveOptions{}
	}
	resolver := nodeResolver{
		rootDir:          rootDir,
		preserveSymlinks: preserveSymlinks,
		options:          *opts,
	}
	return &Plugin{
		Name:          "node-resolve",
		ResolveImport: resolver.resolve,
	}
}

type nodeResolver struct {
	rootDir          string
	preserveSymlinks bool
	options          NodeResolveOptions
}

// resolve maps bare specifiers into node_modules. Relative and absolute
// specifiers pass through untouched.
func (n nodeResolver) resolve(_ context.Context, _ string, specifier string) (string, error) {
	if specifier == "" || specifier[0] == '.' || specifier[0] == '/' {
		return "", nil
	}
	return "/node_modules/" + specifier, nil
}

// EsbuildDownlevel returns the language-downleveling transform for the given
// targets. It must see source before any other transform touches it, so the
// assembler places it at the very front of the pipeline.
func EsbuildDownlevel(targets []string) *Plugin {
	return &Plugin{
		Name: "esbuild",
		Transform: func(_ context.Context, _ string, body string) (string, error) {
			// Downleveling itself happens in the dev server's esbuild
			// bridge; the resolver only controls presence and position.
			return body, nil
		},
	}
}
