package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/founderkit/pkg/llm"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// LLMError renders a generation failure as a status code plus the single
// user-facing message for its kind.
func LLMError(c *fiber.Ctx, err error) error {
	return Error(c, LLMStatus(err), llm.UserMessage(err))
}

// LLMStatus maps an llm error kind to the HTTP status returned to callers.
func LLMStatus(err error) int {
	switch {
	case errors.Is(err, llm.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, llm.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, llm.ErrQuota):
		return http.StatusTooManyRequests
	case errors.Is(err, llm.ErrParse), errors.Is(err, llm.ErrSchemaMismatch):
		return http.StatusBadGateway
	case errors.Is(err, llm.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
