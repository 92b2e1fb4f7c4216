// Package logging builds the zerolog logger used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"

	"tank-duel/internal/config"
)

// ParseLevel converts a config level name to a zerolog level. Unknown names mean info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup builds a logger writing to console, and optionally to a file and Graylog.
// The returned close func releases the file and the GELF connection.
func Setup(cfg config.LogSettings, console io.Writer) (zerolog.Logger, func() error, error) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		},
	}
	var closers []io.Closer

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		closers = append(closers, file)
	}

	if cfg.Graylog.Enabled {
		gw, err := gelf.NewWriter(cfg.Graylog.Address)
		if err != nil {
			closeAll(closers)
			return zerolog.Nop(), nil, fmt.Errorf("failed to connect to graylog at %s: %w", cfg.Graylog.Address, err)
		}
		writers = append(writers, gw)
		if c, ok := any(gw).(io.Closer); ok {
			closers = append(closers, c)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()

	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")

	return logger, func() error { return closeAll(closers) }, nil
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
