package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerPlain(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil))

	logger.Info("window opened", slog.String("module", "window"))

	line := out.String()
	assert.Contains(t, line, "INFO [window] window opened\n")
	assert.NotContains(t, line, "\033[")
}

func TestHandlerColour(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, true, nil))

	logger.Error("shader failed", slog.Any("err", errors.New("syntax error")))

	line := out.String()
	assert.Contains(t, line, "\033[91mERROR \033[0m")
	assert.Contains(t, line, "shader failed: syntax error")
}

func TestHandlerLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "WARN shown")
}

func TestHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil)).With(slog.String("module", "model"))

	logger.Info("loaded")

	assert.Contains(t, out.String(), "[model] loaded")
}

func TestSetup(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	require.NoError(t, Setup("debug"))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	require.Error(t, Setup("loud"))
}

func TestIsTerminalOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, isTerminal(w.Fd()))
}

func TestIsTerminalOnFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminal(f.Fd()))
}
