package handler

import (
	"errors"
	"fmt"

	"job-skill-api/internal/delivery/http/middleware"
	"job-skill-api/internal/pkg/response"
	"job-skill-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/:name", h.GetByName)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	return c.JSON(h.uc.ListSkills(c.Context()))
}

func (h *SkillHandler) GetByName(c fiber.Ctx) error {
	name := pathParam(c, "name")

	s, err := h.uc.GetSkill(c.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(
				fiber.StatusNotFound,
				fmt.Sprintf("Skill '%s' not found", name),
				err,
			)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(s)
}
