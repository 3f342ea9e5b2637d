package lib

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func adminClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
		"jti":  uuid.NewString(),
	}
}

func TestParseToken(t *testing.T) {
	token := signedToken(t, adminClaims(), testSecret)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Sub)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
}

func TestParseTokenFailures(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, adminClaims(), "other-secret")
		_, err := ParseToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := adminClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		_, err := ParseToken(signedToken(t, claims, testSecret), testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing role claim", func(t *testing.T) {
		claims := adminClaims()
		delete(claims, "role")
		_, err := ParseToken(signedToken(t, claims, testSecret), testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("jti not a uuid", func(t *testing.T) {
		claims := adminClaims()
		claims["jti"] = "42"
		_, err := ParseToken(signedToken(t, claims, testSecret), testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token", testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractClaims(t *testing.T) {
	token := signedToken(t, adminClaims(), testSecret)

	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		claims, err := ExtractClaims(r, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Sub)
	})

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		_, err := ExtractClaims(r, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no bearer prefix", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", token)
		_, err := ExtractClaims(r, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
