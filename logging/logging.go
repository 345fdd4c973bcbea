// Package logging hands out the zerolog loggers used across the simulator.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// Get returns the process-wide console logger. It logs at debug level unless
// NO_DEBUG is set in the environment, in which case it logs at info.
func Get() zerolog.Logger {
	once.Do(func() {
		logLevel := zerolog.DebugLevel
		if os.Getenv("NO_DEBUG") != "" {
			logLevel = zerolog.InfoLevel
		}

		logger = New(os.Stderr, logLevel)
	})

	return logger
}

// New builds a console logger writing to w at the given level. Colors are
// only used when w is a file such as a terminal.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	_, isFile := w.(*os.File)
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !isFile,
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a config level name to a zerolog level. The empty string
// means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.InfoLevel, nil
	}

	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}
