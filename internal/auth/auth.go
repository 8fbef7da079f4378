// Package auth verifies the bearer tokens that guard the summary API.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds signer verification parameters.
type Config struct {
	Secret string
	Issuer string
}

// Claims is the caller identity attached to an authenticated request.
type Claims struct {
	Subject   string
	TenantID  string
	Scopes    map[string]struct{}
	ExpiresAt time.Time
}

var (
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken wraps signature, issuer, expiry and payload failures.
	ErrInvalidToken = errors.New("invalid bearer token")
)

// tokenClaims is the wire form of a tracker access token.
type tokenClaims struct {
	jwt.RegisteredClaims
	TenantID string    `json:"tenant_id"`
	Scopes   scopeList `json:"scopes"`
}

// scopeList accepts either a JSON array of scopes or one space-separated string.
type scopeList []string

func (s *scopeList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*s = strings.Fields(joined)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("scopes: %w", err)
	}
	*s = list
	return nil
}

// Verifier checks HS256 tokens against a shared secret and expected issuer.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier builds a Verifier for cfg.
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify validates token and returns the caller's claims.
// Tokens without a subject or tenant are rejected.
func (v *Verifier) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	var tc tokenClaims
	if _, err := v.parser.ParseWithClaims(token, &tc, v.key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if tc.Subject == "" || tc.TenantID == "" {
		return nil, fmt.Errorf("%w: subject and tenant_id are required", ErrInvalidToken)
	}

	claims := &Claims{
		Subject:   tc.Subject,
		TenantID:  tc.TenantID,
		Scopes:    make(map[string]struct{}, len(tc.Scopes)),
		ExpiresAt: tc.ExpiresAt.Time,
	}
	for _, scope := range tc.Scopes {
		if scope != "" {
			claims.Scopes[scope] = struct{}{}
		}
	}
	return claims, nil
}

func (v *Verifier) key(*jwt.Token) (interface{}, error) {
	return v.secret, nil
}

// HasScope reports whether the claim set includes the provided scope.
func (c *Claims) HasScope(scope string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Scopes[scope]
	return ok
}

// HasAnyScope reports whether the claim set includes at least one of scopes.
func (c *Claims) HasAnyScope(scopes ...string) bool {
	for _, scope := range scopes {
		if c.HasScope(scope) {
			return true
		}
	}
	return false
}
