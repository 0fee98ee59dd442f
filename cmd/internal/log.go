package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the command logger. It discards everything until SetupLogging is called.
var Log = zerolog.Nop()

// SetupLogging sends human-readable log lines to stderr.
// Only warnings and errors are shown unless verbose is set.
func SetupLogging(verbose bool) {
	Log = NewLogger(os.Stderr, verbose)
}

func NewLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
