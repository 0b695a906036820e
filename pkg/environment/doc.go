// Package environment carries the application environment (development,
// staging or production) through configuration, request contexts and logs.
//
// Parse normalises the raw APP_ENV value, including the short aliases
// "dev", "stage" and "prod". Middleware attaches the environment to every
// request context, where FromContext reads it back. Outside production it
// also echoes the environment in the X-Environment response header.
// logger.WithEnvironment uses Parse to pick the log level and format.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
// Missing values resolve to the zero Environment ("") in contexts and to
// Development when parsing.
package environment
