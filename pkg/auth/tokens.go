package auth

import (
	"context"
	"time"
)

// Token is a signed access token and the moment it stops being accepted.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenGenerator issues access tokens for an account (JWT in production).
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (Token, error)
}
