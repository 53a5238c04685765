package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output.
	Level string

	// Format is the output format: json, console or auto.
	Format string

	// Output is where to write logs: stderr, stdout, discard or a file path.
	Output string

	// NoColor disables color output in console mode.
	NoColor bool

	// Writer overrides Output when set.
	Writer io.Writer
}

// DefaultConfig returns info level, auto format, stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Format:  "auto",
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig creates a logger from cfg. A nil cfg uses DefaultConfig.
// The returned closer releases the log file, if one was opened.
func NewLoggerFromConfig(cfg *Config) (zerolog.Logger, io.Closer) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	// The global level defaults to debug and would drop trace events.
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}
	out, closer := openOutput(cfg)
	w := formatWriter(out, cfg)

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger, closer
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	}
	if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && l != zerolog.NoLevel {
		return l
	}

	return zerolog.InfoLevel
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openOutput resolves the destination. An unopenable file falls back to stderr.
func openOutput(cfg *Config) (io.Writer, io.Closer) {
	if cfg.Writer != nil {
		return cfg.Writer, nopCloser{}
	}

	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		return os.Stderr, nopCloser{}
	case "stdout":
		return os.Stdout, nopCloser{}
	case "discard", "none":
		return io.Discard, nopCloser{}
	}

	f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr, nopCloser{}
	}

	return f, f
}

func formatWriter(out io.Writer, cfg *Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			format = "console"
		}
	}

	switch format {
	case "console", "pretty":
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	default:
		return out
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
