// Package logging builds the structured loggers used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned for level names other than debug, info, warn
// and error.
var ErrInvalidLevel = errors.New("invalid log level")

// Config holds logger settings.
type Config struct {
	Level      string // debug, info, warn or error; empty means warn
	JSON       bool
	Output     io.Writer // defaults to os.Stderr
	TimeFormat string
}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// New creates a logger from cfg.
func New(cfg Config) (*log.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
	if cfg.JSON {
		logger.SetFormatter(log.JSONFormatter)
	} else {
		logger.SetFormatter(log.TextFormatter)
		logger.SetStyles(defaultStyles())
	}
	return logger, nil
}

func defaultStyles() *log.Styles {
	styles := log.DefaultStyles()
	levels := map[log.Level]string{
		log.DebugLevel: "63",
		log.InfoLevel:  "86",
		log.WarnLevel:  "192",
		log.ErrorLevel: "204",
	}
	for level, color := range levels {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Bold(true).
			MaxWidth(5).
			Foreground(lipgloss.Color(color))
	}
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return styles
}
