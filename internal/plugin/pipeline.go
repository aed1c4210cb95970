package plugin

// PipelineInput carries everything the assembler needs to build the final
// plugin list.
type PipelineInput struct {
	UserPlugins      []*Plugin
	NodeResolve      bool
	NodeResolveOpts  *NodeResolveOptions
	EsbuildTarget    []string
	RootDir          string
	PreserveSymlinks bool
}

// Assemble builds the final ordered plugin list. Order is load-bearing:
//
//	[esbuild?] [set-viewport] [emulate-media] [set-user-agent] [syntax-checker] [user...] [node-resolve?]
//
// The command plugins run first so session commands are handled before any
// transform, the syntax checker guards parsing ahead of user plugins, node
// resolution runs last so user transforms can rewrite imports, and the
// esbuild downlevel transform leads the whole list so it sees raw source.
// Assembly never fails; the flags controlling it are validated upstream.
func Assemble(in PipelineInput) []*Plugin {
	pipeline := make([]*Plugin, 0, len(in.UserPlugins)+6)

	if len(in.EsbuildTarget) > 0 {
		pipeline = append(pipeline, EsbuildDownlevel(in.EsbuildTarget))
	}

	pipeline = append(pipeline, SetViewport(), EmulateMedia(), SetUserAgent(), SyntaxChecker())
	pipeline = append(pipeline, in.UserPlugins...)

	if in.NodeResolve {
		pipeline = append(pipeline, NodeResolve(in.RootDir, in.PreserveSymlinks, in.NodeResolveOpts))
	}

	return pipeline
}
