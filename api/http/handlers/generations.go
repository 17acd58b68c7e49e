package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/llmcompare/api/http/presenter"
	"github.com/artem13815/llmcompare/pkg/generate"
)

// GenerationsHandler exposes the audit trail of past aggregations.
type GenerationsHandler struct {
	repo generate.Repository
}

func NewGenerationsHandler(repo generate.Repository) *GenerationsHandler {
	return &GenerationsHandler{repo: repo}
}

// List returns recorded generations, newest first.
// @Summary List recorded generations
// @Tags    generations
// @Produce json
// @Param   limit  query int false "Page size (1-200)"
// @Param   offset query int false "Offset"
// @Success 200 {array} generate.Generation
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generations [get]
func (h *GenerationsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.repo.List(c.UserContext(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list generations")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one recorded generation.
// @Summary Get a recorded generation
// @Tags    generations
// @Produce json
// @Param   id path string true "Generation ID (UUID)"
// @Success 200 {object} generate.Generation
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /generations/{id} [get]
func (h *GenerationsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	g, err := h.repo.GetByID(c.UserContext(), id)
	if errors.Is(err, generate.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "generation not found")
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load generation")
	}
	return presenter.JSON(c, http.StatusOK, g)
}
