package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/founderkit/api/http/presenter"
	"github.com/artem13815/founderkit/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	auth.Profile
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{Profile: r.User.Profile(), Token: r.Token.Value, ExpiresAt: r.Token.ExpiresAt}
}

// Register handles account registration.
// @Summary Register account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, newAuthResponse(result))
}

// Login handles account login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, newAuthResponse(result))
}

// Me returns the signed-in account.
// @Summary Current account
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Profile
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := actorFrom(c)
	if !actor.Authenticated() {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	user, err := h.useCase.Me(c.UserContext(), actor.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			// token outlived its account
			return presenter.Error(c, http.StatusUnauthorized, "account no longer exists")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load account")
	}
	return presenter.JSON(c, http.StatusOK, user.Profile())
}
