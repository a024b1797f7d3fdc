package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestCompactHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("component", "client").WithGroup("req").Info("sent", "op", "DescribeEvents")
	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "INFO   sent component=client req.op=DescribeEvents\n"), line)

	buf.Reset()
	logger.Debug("grouped", slog.Group("http", "status", 200))
	assert.Contains(t, buf.String(), "DEBUG  grouped http.status=200")
}

func TestCompactHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Empty(t, buf.String())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "WARN   shown")
}

func TestInitialize(t *testing.T) {
	defer Initialize(nil)

	var buf bytes.Buffer
	Initialize(&Config{Level: slog.LevelDebug, Format: "json", Output: &buf})
	Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	SetLevel(slog.LevelError)
	Warn("dropped")
	assert.Empty(t, buf.String())
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(NewCompactHandler(&buf, nil))

	ctx := WithLogger(context.Background(), base)
	ctx = WithOperation(ctx, "StartReplicationTask")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithComponent(ctx, "mockserver")

	FromContext(ctx).Info("handled")
	assert.Contains(t, buf.String(), "operation=StartReplicationTask request_id=req-1 component=mockserver")

	assert.Same(t, GetGlobalLogger(), FromContext(context.Background()))
}
