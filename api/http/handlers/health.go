package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/founderkit/pkg/health"
)

const readyTimeout = 5 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc   health.ReadinessUseCase
	model string
}

// NewHealthHandler: model is reported by /health so operators can see
// which chat model the instance is configured for.
func NewHealthHandler(svc health.ReadinessUseCase, model string) *HealthHandler {
	return &HealthHandler{svc: svc, model: model}
}

type readyResponse struct {
	Status string               `json:"status"`
	Checks []health.CheckResult `json:"checks"`
}

// Health: liveness, never touches dependencies.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "model": h.model})
}

// Ready: postgres ping and schema version, plus the chat endpoint when a server key is set.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} readyResponse
// @Failure 503 {object} readyResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()
	report := h.svc.Ready(ctx)
	if !report.Ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(readyResponse{Status: "not_ready", Checks: report.Checks})
	}
	return c.Status(fiber.StatusOK).JSON(readyResponse{Status: "ready", Checks: report.Checks})
}
