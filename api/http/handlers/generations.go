package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/founderkit/api/http/presenter"
	"github.com/artem13815/founderkit/pkg/tools"
)

// generationPage documents pageResponse[tools.Generation] for swag.
type generationPage struct {
	Items  []tools.Generation `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type GenerationsHandler struct {
	uc tools.UseCase
}

func NewGenerationsHandler(uc tools.UseCase) *GenerationsHandler {
	return &GenerationsHandler{uc: uc}
}

// List возвращает историю генераций текущего пользователя.
// @Summary Generation history
// @Tags    generations
// @Produce json
// @Param   tool query string false "Filter by generator id"
// @Param   limit query int false "Page size (max 200)"
// @Param   offset query int false "Offset"
// @Security BearerAuth
// @Success 200 {object} generationPage
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /generations [get]
func (h *GenerationsHandler) List(c *fiber.Ctx) error {
	p := parsePage(c)
	items, err := h.uc.List(c.UserContext(), actorFrom(c), tools.ID(c.Query("tool")), p.Limit, p.Offset)
	if err != nil {
		return historyError(c, err)
	}
	if items == nil {
		items = []tools.Generation{}
	}
	return presenter.JSON(c, http.StatusOK, pageResponse[tools.Generation]{Items: items, page: p})
}

// Get возвращает одну генерацию по id.
// @Summary Get generation
// @Tags    generations
// @Produce json
// @Param   id path string true "Generation id (UUID)"
// @Security BearerAuth
// @Success 200 {object} tools.Generation
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /generations/{id} [get]
func (h *GenerationsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	g, err := h.uc.Get(c.UserContext(), actorFrom(c), id)
	if err != nil {
		return historyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, g)
}

// Delete удаляет генерацию из истории.
// @Summary Delete generation
// @Tags    generations
// @Param   id path string true "Generation id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /generations/{id} [delete]
func (h *GenerationsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), id); err != nil {
		return historyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func historyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tools.ErrAnonymous):
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, tools.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "generation not found")
	case errors.Is(err, tools.ErrUnknownTool):
		return presenter.Error(c, http.StatusBadRequest, "unknown tool")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to read history")
	}
}
