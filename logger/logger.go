// Package logger provides the package-level zerolog logger used by the
// command line tools and examples. Library packages stay silent; callers
// that embed the compiler can redirect or disable output with Set and
// Disable.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Logger returns the current logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}
