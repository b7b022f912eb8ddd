// Package clilog builds the zerolog logger of the sbtree command.
//
// On a terminal the logger writes a ConsoleWriter styled with lipgloss;
// anywhere else it writes JSON lines. Library packages never log on their
// own: they receive this logger through their options.
package clilog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel  = "SBTREE_LOG_LEVEL"
	EnvFormat = "SBTREE_LOG_FORMAT"
)

// Output formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrBadFormat is returned by New for an unknown format.
var ErrBadFormat = errors.New("clilog: unknown log format")

// Config selects the level and the output format of the logger.
type Config struct {
	Level  string // zerolog level name: trace, debug, info, warn, error, disabled
	Format string // auto, console or json
}

var defaultConfig = Config{
	Level:  "warn",
	Format: FormatAuto,
}

// DefaultConfig returns warn level with automatic format detection.
func DefaultConfig() Config { return defaultConfig }

// ConfigFromEnv returns DefaultConfig overridden by SBTREE_LOG_LEVEL and
// SBTREE_LOG_FORMAT when they are set.
func ConfigFromEnv() Config {
	cfg := defaultConfig
	if v := strings.TrimSpace(os.Getenv(EnvLevel)); v != "" {
		cfg.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Format = v
	}

	return cfg
}

// New returns a logger writing to w.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("clilog: level %q: %w", cfg.Level, err)
	}

	var out io.Writer
	switch strings.ToLower(cfg.Format) {
	case FormatConsole:
		out = ConsoleWriter(w)
	case FormatJSON:
		out = w
	case FormatAuto, "":
		out = w
		if IsTerminal(w) {
			out = ConsoleWriter(w)
		}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

//
// ---------- Console Formatter ----------

const (
	colorTeal   = "#3ddbd9"
	colorBlue   = "#4589ff"
	colorKey    = "#78a9ff"
	colorOrange = "#ff832b"
	colorRed    = "#da1e28"
	colorGray   = "#8d8d8d"
	colorLight  = "#f4f4f4"
)

var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(colorKey))
	equalsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	messageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorLight))
)

// ConsoleWriter returns a zerolog.ConsoleWriter with badge levels.
func ConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(lvl))).
				Padding(0, 1).
				Render(strings.ToUpper(abbrev(lvl)))
		},

		FormatTimestamp: func(i any) string {
			return timestampStyle.Render(fmt.Sprint(i))
		},

		FormatFieldName: func(i any) string {
			return keyStyle.Render(fmt.Sprint(i)) + equalsStyle.Render("=")
		},

		FormatMessage: func(i any) string {
			return messageStyle.Render(fmt.Sprint(i))
		},
	}
}

func levelColor(lvl string) string {
	switch lvl {
	case "trace", "debug":
		return colorTeal
	case "info":
		return colorBlue
	case "warn":
		return colorOrange
	case "error", "fatal", "panic":
		return colorRed
	default:
		return colorGray
	}
}

func abbrev(lvl string) string {
	if len(lvl) > 3 {
		return lvl[:3]
	}

	return lvl
}
