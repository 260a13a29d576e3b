package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artem13815/founderkit/pkg/auth"
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims carries the account id in Subject and its e-mail for display.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

func (g *Generator) Generate(ctx context.Context, user auth.User) (auth.Token, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(g.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: user.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return auth.Token{}, err
	}
	return auth.Token{Value: signed, ExpiresAt: expiresAt}, nil
}
