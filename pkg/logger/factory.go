package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName parses a level name such as "debug" or "WARN".
// Unknown names leave the level unchanged.
func WithLevelName(name string) Option {
	return func(c *config) {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err == nil {
			c.level = l
		}
	}
}

// WithFormat sets the output format. It panics on unknown formats.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithSource adds the caller's file and line to every record.
func WithSource() Option {
	return func(c *config) { c.addSource = true }
}

// WithDevelopment logs debug records as text, tagged with the application name.
func WithDevelopment(app string) Option {
	return environment(app, "development", slog.LevelDebug, FormatText)
}

// WithProduction logs info records and above as JSON, tagged with the application name.
func WithProduction(app string) Option {
	return environment(app, "production", slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks WithProduction for "production"/"prod" and
// WithDevelopment for anything else.
func WithEnvironment(env, app string) Option {
	switch strings.ToLower(env) {
	case "production", "prod":
		return WithProduction(app)
	default:
		return WithDevelopment(app)
	}
}

func environment(app, env string, level slog.Level, format Format) Option {
	return func(c *config) {
		if app == "" {
			return
		}
		c.level = level
		c.format = format
		c.attrs = append(c.attrs, slog.String("app", app), slog.String("env", env))
	}
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level     slog.Level
	format    Format
	output    io.Writer
	attrs     []slog.Attr
	addSource bool
}

// New creates a configured *slog.Logger. Without options it writes JSON
// records of level info and above to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level, AddSource: cfg.addSource}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler)
}
