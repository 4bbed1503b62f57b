package middleware

import "context"

type (
	requestIDKey    struct{}
	htmxKey         struct{}
	langKey         struct{}
	langFallbackKey struct{}
)

// WithRequestID stores the request id for handlers and error bodies.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// WithHTMX records whether the request expects an htmx fragment.
func WithHTMX(ctx context.Context, fragment bool) context.Context {
	return context.WithValue(ctx, htmxKey{}, fragment)
}

// IsHTMX reports the flag set by WithHTMX.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(htmxKey{}).(bool)
	return v
}

// WithLang stores the negotiated language.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}
