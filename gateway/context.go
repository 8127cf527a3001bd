package gateway

import "context"

type (
	contextKey string
)

const (
	contextTokenKey     contextKey = "authToken"
	contextAnonymousKey contextKey = "anonymous"
)

// WithToken overrides the stored access token for calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextTokenKey, token)
}

// WithAnonymous marks calls made with ctx as public: no bearer header is
// attached and a 401 is returned to the caller like any other status.
func WithAnonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextAnonymousKey, true)
}

func getToken(ctx context.Context) (string, bool) {
	if v := ctx.Value(contextTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(contextAnonymousKey).(bool)
	return v
}
