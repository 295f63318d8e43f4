// Package logging builds the logrus logger shared by the CLI and the TUI.
// The terminal belongs to the renderer, so output only ever goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to path at level. An empty path discards all
// output. The returned close func is never nil.
func New(path, level string) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(lvl)

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

// ParseLevel accepts logrus level names plus "quiet" for warnings only.
// An empty string means info.
func ParseLevel(level string) (logrus.Level, error) {
	switch level {
	case "":
		return logrus.InfoLevel, nil
	case "quiet":
		return logrus.WarnLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}
