package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/tagline/pkg/environment"
)

// Format selects the record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*settings)

type settings struct {
	level      slog.Level
	format     Format
	out        io.Writer
	static     []slog.Attr
	extractors []ContextExtractor
}

func defaults() settings {
	return settings{level: slog.LevelInfo, format: FormatJSON, out: os.Stdout}
}

// WithLevel sets the minimum level. It overrides the level chosen by an
// earlier WithEnvironment.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat selects JSON or text output. Any other value panics.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(s *settings) { s.format = f }
}

// WithOutput redirects records to w. A nil writer keeps stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithContextExtractors adds extractors whose attributes are appended to
// records logged with a context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) { s.extractors = append(s.extractors, extractors...) }
}

// WithEnvironment tags records with the service and environment names and
// picks the defaults for env: debug text logs in development, info JSON
// logs in staging and production.
func WithEnvironment(env, service string) Option {
	return func(s *settings) {
		e := environment.Parse(env)
		s.level, s.format = slog.LevelInfo, FormatJSON
		if e == environment.Development {
			s.level, s.format = slog.LevelDebug, FormatText
		}
		if service != "" {
			s.static = append(s.static, slog.String("service", service))
		}
		s.static = append(s.static, slog.String("env", string(e)))
	}
}
