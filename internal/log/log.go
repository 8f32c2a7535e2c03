// Package log builds the slog handlers used for CLI diagnostics. The
// report itself is written by the culture printer; this logger carries
// only setup messages, verbose progress, and subprocess debug detail.
package log

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Format selects a diagnostic log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a format outside text and json.
var ErrUnknownFormat = errors.New("unknown log format")

// NewHandler creates a slog.Handler writing to w at the given level.
func NewHandler(w io.Writer, level slog.Level, format Format) (slog.Handler, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case FormatText:
		return newCharmHandler(w, level), nil
	}
	return nil, ErrUnknownFormat
}

func newCharmHandler(w io.Writer, level slog.Level) slog.Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
	})
	logger.SetColorProfile(termenv.ColorProfile())

	return logger
}
