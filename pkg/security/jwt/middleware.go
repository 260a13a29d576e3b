package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalUserID is the fiber.Ctx Locals key holding the authenticated subject.
const LocalUserID = "userId"

var (
	errMissingHeader = errors.New("missing Authorization header")
	errEmptyToken    = errors.New("empty token")
	errInvalidToken  = errors.New("invalid or expired token")
	errInvalidIssuer = errors.New("invalid token issuer")
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	v := verifier{secret: []byte(secret), issuer: expectedIssuer}
	return func(c *fiber.Ctx) error {
		claims, err := v.verify(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		c.Locals(LocalUserID, claims.Subject)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware lets anonymous requests through untouched, but a
// request that does carry a token must carry a valid one.
func NewOptionalAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	v := verifier{secret: []byte(secret), issuer: expectedIssuer}
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.TrimSpace(header) == "" {
			return c.Next()
		}
		claims, err := v.verify(header)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		c.Locals(LocalUserID, claims.Subject)
		return c.Next()
	}
}

type verifier struct {
	secret []byte
	issuer string
}

func (v verifier) verify(authHeader string) (*Claims, error) {
	if authHeader == "" {
		return nil, errMissingHeader
	}
	// Support both "Bearer <token>" and "<token>" (no prefix).
	tokenStr := strings.TrimSpace(authHeader)
	if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	if tokenStr == "" {
		return nil, errEmptyToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, errInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, errInvalidIssuer
	}
	return claims, nil
}
