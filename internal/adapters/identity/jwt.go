// Package identity is the thin session adapter over the external identity
// provider. Signup/login/logout live with the provider; all this service
// needs is to map a bearer token to an owner account id.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("identity: invalid token")

// Verifier resolves a bearer token to the owner account id.
type Verifier interface {
	OwnerID(token string) (string, error)
}

// JWTVerifier validates HS256 tokens issued by the identity provider and
// reads the account id from the sub claim.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) OwnerID(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return sub, nil
}

// StaticVerifier maps fixed tokens to owner ids. Used by tests and local
// development; never a silent fallback in production wiring.
type StaticVerifier map[string]string

func (s StaticVerifier) OwnerID(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", ErrInvalidToken
}
