// Package config reads typed configuration from environment variables.
//
// Fields carry `env` tags understood by github.com/caarlos0/env/v11. LoadEnv
// first copies variables from .env files (github.com/joho/godotenv) into the
// process environment without overriding what is already set:
//
//	type appConfig struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		Name string `env:"APP_NAME" envDefault:"taglined"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//		return err
//	}
//	cfg, err := config.Load[appConfig]()
//
// WithVars substitutes a fixed map for the process environment, which keeps
// tests independent of each other.
package config
