// Package zlog provides the zerolog-based logging used by taskline tools.
package zlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the shared logger instance. Tools write their payload to stdout,
// so log records go to stderr.
var Logger zerolog.Logger

// Init sets up Logger with JSON output on stderr.
func Init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// InitConsole sets up Logger with human-readable colored output on stderr.
func InitConsole() {
	Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().
		Timestamp().
		Logger().
		Level(zerolog.TraceLevel)
}

// SetLevel applies a textual level ("trace", "debug", "info", "warn",
// "error", "fatal", "panic") to Logger.
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	Logger = Logger.Level(parsed)

	return nil
}
