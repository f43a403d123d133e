package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. LOG_FORMAT=console switches from the
// default JSON output to a human-readable writer; LOG_LEVEL picks the
// minimum level (defaults to info).
func New(serviceName string) zerolog.Logger {
	var output = os.Stdout

	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.
		New(output).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(ParseLevel(os.Getenv("LOG_LEVEL")))

	if os.Getenv("LOG_FORMAT") == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		})
	}

	return logger
}

func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(levelString); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
