// Package requestctx carries request-scoped values between middleware and handlers.
package requestctx

import (
	"context"

	"github.com/louisbranch/klyrapay/internal/platform/i18n"
)

// localeContextKey is the context key for the routed locale.
type localeContextKey struct{}

// WithLocale stores the locale resolved for the request in context.
func WithLocale(ctx context.Context, locale i18n.Locale) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale stored in context.
func LocaleFromContext(ctx context.Context) (i18n.Locale, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(localeContextKey{}).(i18n.Locale)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
