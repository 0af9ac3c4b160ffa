// Package auth carries the bearer credential used on calls to the LIAM
// backend. The gateway never stores, refreshes or inspects tokens; LIAM
// owns the whole OAuth lifecycle. A token is either configured for the
// process lifetime or forwarded from the caller's own request.
package auth

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

type tokenKey struct{}

// WithToken returns a context carrying a per-request bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the per-request bearer token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// Middleware lifts the Authorization bearer value of an incoming HTTP
// request into the request context, so the gateway forwards the caller's
// own LIAM credential on the resulting backend call.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, prefix) {
			if token := strings.TrimSpace(h[len(prefix):]); token != "" {
				r = r.WithContext(WithToken(r.Context(), token))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// StaticTokenSource wraps a process-wide credential, or returns nil when
// none is configured.
func StaticTokenSource(token string) oauth2.TokenSource {
	if token == "" {
		return nil
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
}
