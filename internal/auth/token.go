// Package auth verifies Supabase access tokens and holds the Gmail OAuth helpers.
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/supabase-community/supabase-go"
)

var (
	ErrMissingToken = errors.New("missing authentication token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Verifier turns a bearer token into the id of the user it was issued to.
type Verifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier checks Supabase access tokens locally with the project's HS256 secret.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// SupabaseVerifier asks the Supabase auth server who owns the token. It is
// used when no JWT secret is configured.
type SupabaseVerifier struct {
	lookup func(token string) (string, error)
}

func NewSupabaseVerifier(client *supabase.Client) *SupabaseVerifier {
	return &SupabaseVerifier{lookup: func(token string) (string, error) {
		user, err := client.Auth.WithToken(token).GetUser()
		if err != nil {
			return "", err
		}
		return user.ID.String(), nil
	}}
}

func (v *SupabaseVerifier) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	id, err := v.lookup(token)
	if err != nil {
		return "", errors.Wrap(ErrInvalidToken, err.Error())
	}
	return id, nil
}
