package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{" warn ", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"trace", logrus.TraceLevel},
		{"info", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := New(Config{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closeFn()

	WithComponent(l, "boxselect").Debug("armed")

	out := buf.String()
	if !strings.Contains(out, "armed") || !strings.Contains(out, "component=boxselect") {
		t.Errorf("output = %q, want message with component field", out)
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := New(Config{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxedit.log")
	l, closeFn, err := New(Config{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("to file")
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, want message", data)
	}
}

func TestNewFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "boxedit.log")
	if _, _, err := New(Config{File: path}); err == nil {
		t.Error("New() error = nil, want error for unwritable path")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	if l.IsLevelEnabled(logrus.ErrorLevel) {
		t.Error("Discard() logger has error level enabled")
	}
}
