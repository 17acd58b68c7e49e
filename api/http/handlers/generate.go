package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/llmcompare/api/http/presenter"
	"github.com/artem13815/llmcompare/pkg/generate"
)

type GenerateHandler struct {
	uc     generate.UseCase
	logger *zap.Logger
}

func NewGenerateHandler(uc generate.UseCase, logger *zap.Logger) *GenerateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateHandler{uc: uc, logger: logger}
}

type generateRequest struct {
	Prompt *string `json:"prompt"`
}

// Generate sends the prompt to Claude and GPT-4 and returns both replies.
// @Summary Compare Claude and GPT-4 replies
// @Description The prompt is read from the query string, or from a JSON body when the query has none.
// @Tags    generate
// @Accept  json
// @Produce json
// @Param   prompt query string false "Prompt text"
// @Param   input  body  generateRequest false "Prompt as JSON"
// @Success 200 {object} generate.CombinedResult
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generate-response [post]
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	prompt, ok := promptFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnprocessableEntity, "prompt is required")
	}
	out, err := h.uc.Generate(c.UserContext(), prompt)
	if err != nil {
		h.logger.Error("error processing request",
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// promptFrom prefers the query parameter; an explicit empty value still counts.
func promptFrom(c *fiber.Ctx) (string, bool) {
	if c.Context().QueryArgs().Has("prompt") {
		// fiber reuses request buffers once the handler returns
		return strings.Clone(c.Query("prompt")), true
	}
	if len(c.Body()) == 0 {
		return "", false
	}
	var req generateRequest
	if err := c.BodyParser(&req); err != nil || req.Prompt == nil {
		return "", false
	}
	return *req.Prompt, true
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
