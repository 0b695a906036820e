package environment

import (
	"context"
	"strings"
)

// Environment names the deployment the service runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse accepts the full names and the aliases dev, stage and prod in any
// case. Anything else, including "", is Development.
func Parse(s string) Environment {
	switch e := strings.ToLower(strings.TrimSpace(s)); e {
	case "prod", string(Production):
		return Production
	case "stage", string(Staging):
		return Staging
	}
	return Development
}

type ctxKey struct{}

func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

// FromContext returns "" when ctx carries no environment.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(ctxKey{}).(Environment)
	return env
}
