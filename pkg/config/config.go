package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is applied by LoadEnv when no paths are given.
const DefaultEnvFile = ".env"

var (
	ErrLoadingEnvFile = errors.New("config: cannot load env file")
	ErrParsingConfig  = errors.New("config: cannot parse environment")
)

// Option adjusts how Load reads variables.
type Option func(*env.Options)

// WithPrefix only reads variables starting with prefix. Tag names are
// written without it.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithVars reads from vars instead of the process environment.
func WithVars(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// LoadEnv copies variables from .env files into the process environment
// without overriding ones already set. With no paths it applies
// DefaultEnvFile if that file exists; named files must exist.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the `env` tagged fields of T.
func Load[T any](opts ...Option) (T, error) {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	v, err := env.ParseAsWithOptions[T](o)
	if err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}
