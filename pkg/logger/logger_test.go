package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	log, err := New(&Config{Level: LevelDebug, OutputPath: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	log.Info("hello from test", zap.String("key", "value"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"hello from test"`) {
		t.Fatalf("message missing from file output: %s", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("field missing from file output: %s", out)
	}
}

func TestNew_StdoutOnlyWithoutPath(t *testing.T) {
	log, err := New(&Config{Level: LevelInfo})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// Must not panic or create files; just log once.
	log.Info("stdout only")
}

func TestWithFields_KeepsConfig(t *testing.T) {
	log, err := New(&Config{Level: LevelInfo})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	child := log.WithFields(zap.String("component", "test"))
	if child == log {
		t.Fatal("WithFields should return a new logger")
	}
	child.Info("child logger works")
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      Level
		want    zapcore.Level
		wantErr bool
	}{
		{LevelDebug, zapcore.DebugLevel, false},
		{LevelInfo, zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{LevelWarn, zapcore.WarnLevel, false},
		{LevelError, zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tc := range cases {
		got, err := parseLevel(tc.in)
		if tc.wantErr && err == nil {
			t.Fatalf("level %q: expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("level %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("level %q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}
