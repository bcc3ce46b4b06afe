package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerNilHandlers(t *testing.T) {
	h := newFanoutHandler(nil, nil)
	if _, ok := h.(NoopHandler); !ok {
		t.Errorf("expected NoopHandler for all nil handlers, got %T", h)
	}
}

func TestNewFanoutHandlerSingleHandler(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)

	if h := newFanoutHandler(nil, inner); h != inner {
		t.Error("expected single non-nil handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsPerHandlerLevels(t *testing.T) {
	var console, file bytes.Buffer
	h := newFanoutHandler(
		slog.NewTextHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected fanout to be enabled for debug")
	}

	logger := slog.New(h).With(slog.String(FieldComponent, "ipc"))
	logger.Debug("only in file")
	logger.Warn("in both")

	if strings.Contains(console.String(), "only in file") {
		t.Errorf("console received debug record: %q", console.String())
	}
	if !strings.Contains(console.String(), "in both") {
		t.Errorf("console missing warn record: %q", console.String())
	}
	if !strings.Contains(file.String(), "only in file") || !strings.Contains(file.String(), `"component":"ipc"`) {
		t.Errorf("file missing debug record or attrs: %q", file.String())
	}
}
