package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubServer(t *testing.T, fn func(context.Context) error) {
	t.Helper()
	saved := runServer
	runServer = fn
	t.Cleanup(func() { runServer = saved })
}

func TestHandleMCP(t *testing.T) {
	_, errOut := captureIO(t, "")
	called := false
	stubServer(t, func(ctx context.Context) error {
		called = true
		assert.NotNil(t, ctx)
		return nil
	})

	require.NoError(t, HandleMCP(nil))
	assert.True(t, called)
	assert.Contains(t, errOut.String(), "starting MCP server")
	assert.Contains(t, errOut.String(), "MCP server stopped")
}

func TestHandleMCP_ServerError(t *testing.T) {
	captureIO(t, "")
	stubServer(t, func(context.Context) error { return errors.New("transport closed") })

	err := HandleMCP(nil)
	assert.ErrorContains(t, err, "running MCP server: transport closed")
}

func TestHandleMCP_Canceled(t *testing.T) {
	captureIO(t, "")
	stubServer(t, func(context.Context) error { return context.Canceled })
	assert.NoError(t, HandleMCP(nil))
}

func TestHandleMCP_RejectsArgs(t *testing.T) {
	captureIO(t, "")
	stubServer(t, func(context.Context) error { return nil })
	assert.Error(t, HandleMCP([]string{"extra"}))
}
