// Package netx provides the free-port lookup used when no port is configured.
package netx

import (
	"context"
	"fmt"
	"net"
)

// FreePort returns preferred when it can be bound, otherwise a free port
// assigned by the OS. The listener is closed before returning, so the port is
// only reserved in the practical sense; the control server binds it shortly
// after resolution.
func FreePort(ctx context.Context, preferred int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var lc net.ListenConfig
	if preferred > 0 {
		ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf("127.0.0.1:%d", preferred))
		if err == nil {
			_ = ln.Close()
			return preferred, nil
		}
	}

	ln, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to find a free port: %w", err)
	}
	defer func() { _ = ln.Close() }()

	return ln.Addr().(*net.TCPAddr).Port, nil
}
