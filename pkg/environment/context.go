package environment

import (
	"context"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps an environment name, or one of its short aliases (dev, stage,
// prod), to an Environment. Matching ignores case and surrounding spaces.
// Anything unrecognized is treated as Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is, or is an alias of, production.
func (e Environment) IsProduction() bool {
	return Parse(string(e)) == Production
}

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context, or Development when none
// was set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return Development
	}
	env, ok := ctx.Value(contextKey{}).(Environment)
	if !ok {
		return Development
	}
	return env
}
