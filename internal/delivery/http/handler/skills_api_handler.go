package handler

import (
	"errors"
	"fmt"

	"job-skill-api/internal/delivery/http/middleware"
	"job-skill-api/internal/pkg/response"
	"job-skill-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SkillsAPIHandler serves the HR-Open Skills API surface at /skills,
// outside the /api prefix.
type SkillsAPIHandler struct {
	uc usecase.AssertionUsecase
}

func NewSkillsAPIHandler(uc usecase.AssertionUsecase) *SkillsAPIHandler {
	return &SkillsAPIHandler{uc: uc}
}

func (h *SkillsAPIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.GetAssertions)
}

func (h *SkillsAPIHandler) GetAssertions(c fiber.Ctx) error {
	identifier := c.Query("identifier")
	if identifier == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "identifier query parameter is required", nil)
	}

	res, err := h.uc.SkillAssertions(c.Context(), identifier)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(
				fiber.StatusNotFound,
				fmt.Sprintf("Job with identifier %s not found", identifier),
				err,
			)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(res)
}
