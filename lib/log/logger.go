package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

type LogHandler struct {
	subHandler  slog.Handler
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex

	out    io.Writer
	colour bool
}

const (
	reset = "\033[0m"

	darkGray    = 90
	lightGray   = 37
	cyan        = 36
	lightRed    = 91
	lightYellow = 93
)

func (h *LogHandler) colorize(colorCode int, v string) string {
	if !h.colour {
		return v
	}
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := *h
	n.subHandler = h.subHandler.WithAttrs(attrs)
	return &n
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	n := *h
	n.subHandler = h.subHandler.WithGroup(name)
	return &n
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch r.Level {
	case slog.LevelDebug:
		level = h.colorize(darkGray, level)
	case slog.LevelInfo:
		level = h.colorize(cyan, level)
	case slog.LevelWarn:
		level = h.colorize(lightYellow, level)
	case slog.LevelError:
		level = h.colorize(lightRed, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(h.colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	b.WriteString(level)
	if attrs["module"] != nil {
		b.WriteString(h.colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	b.WriteString(r.Message)
	if attrs["err"] != nil {
		b.WriteString(": ")
		b.WriteString(fmt.Sprint(attrs["err"]))
	}
	b.WriteString("\n")

	_, err = io.WriteString(h.out, b.String())
	return err
}

func (h *LogHandler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

// NewHandler writes to stdout, colourised only when stdout is a terminal.
func NewHandler(opts *slog.HandlerOptions) *LogHandler {
	return NewHandlerTo(os.Stdout, isTerminal(os.Stdout.Fd()), opts)
}

func NewHandlerTo(out io.Writer, colour bool, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	b := &bytes.Buffer{}
	return &LogHandler{
		buffer: b,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
		out:         out,
		colour:      colour,
	}
}

// Setup installs the handler as the slog default for the given level
// name (debug, info, warn, error).
func Setup(level string) error {
	var lvl slog.Level
	if level != "" {
		err := lvl.UnmarshalText([]byte(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	slog.SetDefault(slog.New(NewHandler(&slog.HandlerOptions{Level: lvl})))
	return nil
}

// Module returns a logger that tags every record with the given module.
func Module(name string) *slog.Logger {
	return slog.Default().With(slog.String("module", name))
}
