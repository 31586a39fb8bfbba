package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTVerifier_Verify(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	testCases := []struct {
		name    string
		token   string
		wantID  string
		wantErr error
	}{
		{
			name:   "valid",
			token:  signToken(t, testSecret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future}),
			wantID: "user-1",
		},
		{
			name:    "empty",
			token:   " ",
			wantErr: ErrMissingToken,
		},
		{
			name:    "expired",
			token:   signToken(t, testSecret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: past}),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, "another-secret-another-secret-another", jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future}),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "no subject",
			token:   signToken(t, testSecret, jwt.RegisteredClaims{ExpiresAt: future}),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := v.Verify(tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestSupabaseVerifier_Verify(t *testing.T) {
	v := &SupabaseVerifier{lookup: func(token string) (string, error) {
		if token == "good" {
			return "user-9", nil
		}
		return "", errors.New("401")
	}}

	id, err := v.Verify("good")
	require.NoError(t, err)
	assert.Equal(t, "user-9", id)

	_, err = v.Verify("bad")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(NewJWTVerifier(testSecret), zap.NewNop()))
	r.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) })

	good := signToken(t, testSecret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})

	testCases := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "ok", header: "Bearer " + good, wantCode: http.StatusOK, wantBody: "user-1"},
		{name: "no header", wantCode: http.StatusUnauthorized},
		{name: "basic auth", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}

	require.NoError(t, SaveToken(path, tok))
	got, err := TokenFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)

	_, err = TokenFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
