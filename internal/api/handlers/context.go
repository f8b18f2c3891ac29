package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

type clientIPKey struct{}

// ClientIPMiddleware stores the request's remote address in the operation context
// unless an earlier middleware already set one.
// Run chi's RealIP middleware first so proxies are honored.
func ClientIPMiddleware(ctx huma.Context, next func(huma.Context)) {
	if ClientIP(ctx.Context()) != "" {
		next(ctx)
		return
	}
	next(huma.WithValue(ctx, clientIPKey{}, ctx.RemoteAddr()))
}

// ClientIP returns the address stored by ClientIPMiddleware
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// WithClientIP attaches a client address to ctx
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}
