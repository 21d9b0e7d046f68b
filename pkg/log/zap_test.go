package log

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := Init(ZapConfig{
		Level:    "debug",
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
		File:     FileConfig{Filename: path, MaxSize: 1},
	})

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	l.Infof(ctx, "hello %s", "world")
	if zl, ok := l.(*zapLogger); ok {
		_ = zl.sugar.Sync()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"request_id":"req-1"`) {
		t.Fatalf("expected request id field in log output, got %s", b)
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Debug(context.Background(), "x")
	l.Warnf(context.TODO(), "y %d", 1)
}
