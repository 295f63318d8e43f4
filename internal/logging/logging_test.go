package logging

import (
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
		ok   bool
	}{
		{"", logrus.InfoLevel, true},
		{"debug", logrus.DebugLevel, true},
		{"warn", logrus.WarnLevel, true},
		{"quiet", logrus.WarnLevel, true},
		{"trace", logrus.TraceLevel, true},
		{"loud", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.log")

	logger, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.WithField("algorithm", "quick").Debug("run started")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "run started") || !strings.Contains(line, "algorithm=quick") {
		t.Errorf("unexpected log output: %q", line)
	}
}

func TestNewDiscard(t *testing.T) {
	logger, closeFn, err := New("", "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("dropped")
	if err := closeFn(); err != nil {
		t.Error(err)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, _, err := New("", "chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}
