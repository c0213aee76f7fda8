package mcp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_toolCallAttrs(t *testing.T) {
	buf := captureLogs(t)

	handler := LoggingMiddleware()(func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		return nil, nil
	})

	_, err := handler(context.Background(), "tools/call", &sdkmcp.CallToolRequest{
		Params: &sdkmcp.CallToolParamsRaw{Name: "pandasai_validate_result"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"method":"tools/call"`)
	assert.Contains(t, out, `"tool":"pandasai_validate_result"`)
	assert.Contains(t, out, "method call completed")
}

func TestLoggingMiddleware_errorPathCarriesResourceURI(t *testing.T) {
	buf := captureLogs(t)

	want := errors.New("boom")
	handler := LoggingMiddleware()(func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		return nil, want
	})

	_, err := handler(context.Background(), "resources/read", &sdkmcp.ReadResourceRequest{
		Params: &sdkmcp.ReadResourceParams{URI: "pandasai://hint/number"},
	})
	require.ErrorIs(t, err, want)

	out := buf.String()
	assert.Contains(t, out, "method call failed")
	assert.Contains(t, out, `"uri":"pandasai://hint/number"`)
	assert.Contains(t, out, `"error":"boom"`)
}
