// Package logging builds the logrus logger shared by the commands.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Levels accepted by --log-level.
var Levels = []string{"debug", "info", "warn", "error"} //nolint:gochecknoglobals

// New returns a text logger writing to w at the named level.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})

	return logger, nil
}

// Discard returns a logger that drops everything, for tests and library callers.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
