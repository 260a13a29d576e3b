package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/founderkit/api/http/presenter"
	"github.com/artem13815/founderkit/pkg/tools"
)

// HeaderAPIKey carries the caller's own chat-endpoint credential.
const HeaderAPIKey = "X-OpenAI-Key"

type ToolsHandler struct {
	uc tools.UseCase
	// used when the request has no X-OpenAI-Key; may be empty
	defaultAPIKey string
}

func NewToolsHandler(uc tools.UseCase, defaultAPIKey string) *ToolsHandler {
	return &ToolsHandler{uc: uc, defaultAPIKey: defaultAPIKey}
}

type generationResponse struct {
	ID        string          `json:"id,omitempty"`
	Tool      tools.ID        `json:"tool"`
	Model     string          `json:"model"`
	Saved     bool            `json:"saved"`
	CreatedAt time.Time       `json:"createdAt"`
	Result    json.RawMessage `json:"result" swaggertype:"object"`
}

// List возвращает каталог генераторов.
// @Summary Available generators
// @Tags    tools
// @Produce json
// @Success 200 {array} tools.Tool
// @Router  /tools [get]
func (h *ToolsHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Catalog())
}

// Generate runs one generator and returns its structured result.
// Authenticated callers also get the result saved to their history.
// @Summary Run a generator
// @Tags    tools
// @Accept  json
// @Produce json
// @Param   tool path string true "Generator id, e.g. idea-analyzer"
// @Param   input body tools.Input true "Form input"
// @Param   X-OpenAI-Key header string false "Caller's OpenAI API key"
// @Security BearerAuth
// @Success 200 {object} generationResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /tools/{tool} [post]
func (h *ToolsHandler) Generate(c *fiber.Ctx) error {
	var in tools.Input
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	apiKey := strings.TrimSpace(c.Get(HeaderAPIKey))
	if apiKey == "" {
		apiKey = h.defaultAPIKey
	}

	g, err := h.uc.Generate(c.UserContext(), actorFrom(c), apiKey, tools.ID(c.Params("tool")), in)
	if err != nil {
		var verr tools.ErrValidation
		switch {
		case errors.Is(err, tools.ErrUnknownTool):
			return presenter.Error(c, http.StatusNotFound, "unknown tool")
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		default:
			return presenter.LLMError(c, err)
		}
	}

	resp := generationResponse{
		Tool:      g.Tool,
		Model:     g.Model,
		Saved:     g.Saved,
		CreatedAt: g.CreatedAt,
		Result:    g.Result,
	}
	if g.Saved {
		resp.ID = g.ID.String()
	}
	return presenter.JSON(c, http.StatusOK, resp)
}
