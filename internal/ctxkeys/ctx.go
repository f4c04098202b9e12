package ctxkeys

import (
	"context"

	"github.com/complytrack/complytrack/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	AuthenticatedKey contextKey = "authenticated"
	URLPathKey       contextKey = "url_path"
	ConfigKey        contextKey = "config"
)

// Authenticated reports whether the request carried the valid session
// marker. There is exactly one session value system-wide.
func Authenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(AuthenticatedKey).(bool)
	return ok
}

func WithAuthenticated(ctx context.Context, ok bool) context.Context {
	return context.WithValue(ctx, AuthenticatedKey, ok)
}

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
