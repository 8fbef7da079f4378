package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var (
	testConfig   = Config{Secret: "test-secret", Issuer: "test-issuer"}
	testVerifier = NewVerifier(testConfig)
)

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testConfig.Issuer,
		"exp":       time.Now().Add(time.Hour).Unix(),
		"scopes":    []string{ScopeSummariesWrite, ScopeSummariesRead},
	}
}

func TestVerifyValidToken(t *testing.T) {
	claims, err := testVerifier.Verify(signToken(t, validClaims(), testConfig.Secret))
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "tenant-1", claims.TenantID)
	require.True(t, claims.HasScope(ScopeSummariesWrite))
	require.True(t, claims.HasAnyScope("other", ScopeSummariesRead))
	require.False(t, claims.ExpiresAt.IsZero())
}

func TestVerifySpaceSeparatedScopes(t *testing.T) {
	mc := validClaims()
	mc["scopes"] = "summaries:read  other"

	claims, err := testVerifier.Verify(signToken(t, mc, testConfig.Secret))
	require.NoError(t, err)
	require.True(t, claims.HasScope(ScopeSummariesRead))
	require.False(t, claims.HasScope(ScopeSummariesWrite))
}

func TestVerifyRejects(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "someone-else"

	noTenant := validClaims()
	delete(noTenant, "tenant_id")

	noExpiry := validClaims()
	delete(noExpiry, "exp")

	badScopes := validClaims()
	badScopes["scopes"] = 42

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, validClaims()).SignedString([]byte(testConfig.Secret))
	require.NoError(t, err)

	cases := map[string]string{
		"wrong alg":    hs384,
		"expired":      signToken(t, expired, testConfig.Secret),
		"wrong issuer": signToken(t, wrongIssuer, testConfig.Secret),
		"no tenant":    signToken(t, noTenant, testConfig.Secret),
		"no expiry":    signToken(t, noExpiry, testConfig.Secret),
		"bad secret":   signToken(t, validClaims(), "other-secret"),
		"garbage":      "not-a-jwt",
		"bad scopes":   signToken(t, badScopes, testConfig.Secret),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := testVerifier.Verify(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err = testVerifier.Verify("  ")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestNilClaimsHaveNoScopes(t *testing.T) {
	var c *Claims
	require.False(t, c.HasScope(ScopeSummariesRead))
	require.False(t, c.HasAnyScope(ScopeSummariesRead))
}

func TestMiddleware(t *testing.T) {
	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewMiddleware(testConfig).Wrap(next)

	t.Run("public path", func(t *testing.T) {
		seen = nil
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Nil(t, seen)
	})

	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/summaries", nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/summaries", nil)
		req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/summaries", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(), testConfig.Secret))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
		require.NotNil(t, seen)
		require.Equal(t, "tenant-1", seen.TenantID)
	})
}
