package auth

import (
	"context"
	"net/http"
	"strings"
)

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// FromContext returns the claims stored by the middleware, if any.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// publicPaths are served without a token. CORS preflights are always public.
var publicPaths = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// Middleware authenticates requests with a Verifier.
type Middleware struct {
	verifier *Verifier
}

// NewMiddleware constructs a middleware that leaves health and metrics unauthenticated.
func NewMiddleware(cfg Config) Middleware {
	return Middleware{verifier: NewVerifier(cfg)}
}

// Wrap rejects requests without valid credentials and stores the claims of
// accepted ones on the request context.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublic(r) {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, ErrMissingToken.Error(), http.StatusUnauthorized)
			return
		}
		claims, err := m.verifier.Verify(token)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func isPublic(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}
	_, ok := publicPaths[r.URL.Path]
	return ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	return token, true
}
