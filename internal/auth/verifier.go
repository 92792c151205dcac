package auth

import (
	"context"
	"errors"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// ErrInvalidToken is returned for absent, malformed or rejected tokens.
var ErrInvalidToken = errors.New("invalid session token")

// TokenVerifier exchanges a bearer token for the identity it belongs to.
// The session store owns authentication; this service only consumes the
// verify call.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// JWTVerifier validates session tokens locally using the session store's
// HS256 signing secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier builds a local verifier.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify parses and validates the token, returning the embedded identity.
func (v *JWTVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &domain.Identity{ID: claims.Subject, Email: claims.Email}, nil
}
