package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewHonorsLevel(t *testing.T) {
	ctx := context.Background()

	info := New(slog.LevelInfo)
	if info.Enabled(ctx, slog.LevelDebug) {
		t.Error("info logger accepts debug records")
	}
	if !info.Enabled(ctx, slog.LevelInfo) {
		t.Error("info logger rejects info records")
	}

	debug := New(slog.LevelDebug)
	if !debug.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug logger rejects debug records")
	}
}
