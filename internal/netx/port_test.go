package netx

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/manolakis/webrunner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreePort(t *testing.T) {
	ctx := context.Background()

	t.Run("PreferredPortWhenFree", func(t *testing.T) {
		preferred := testutil.GetRandomPort(t)

		port, err := FreePort(ctx, preferred)
		require.NoError(t, err)
		assert.Equal(t, preferred, port)
	})

	t.Run("FallsBackWhenPreferredBusy", func(t *testing.T) {
		preferred := testutil.GetRandomPort(t)
		ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", preferred))
		require.NoError(t, err)
		defer func() { _ = ln.Close() }()

		port, err := FreePort(ctx, preferred)
		require.NoError(t, err)
		assert.NotZero(t, port)
		assert.NotEqual(t, preferred, port)
	})

	t.Run("ZeroPreferredAsksTheOS", func(t *testing.T) {
		port, err := FreePort(ctx, 0)
		require.NoError(t, err)
		assert.NotZero(t, port)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := FreePort(canceled, 0)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
