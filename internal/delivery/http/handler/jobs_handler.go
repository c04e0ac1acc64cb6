package handler

import (
	"errors"
	"fmt"
	"net/url"

	"job-skill-api/internal/delivery/http/middleware"
	"job-skill-api/internal/pkg/response"
	"job-skill-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/:positionID", h.GetPosting)
	grp.Get("/:positionID/skills", h.SkillBreakdown)
	grp.Get("/:positionID/skills/required", h.RequiredSkills)
	grp.Get("/:positionID/skills/recommended", h.RecommendedSkills)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	return c.JSON(h.uc.ListJobs(c.Context()))
}

func (h *JobsHandler) GetPosting(c fiber.Ctx) error {
	id := pathParam(c, "positionID")

	posting, err := h.uc.GetPosting(c.Context(), id)
	if err != nil {
		return mapJobError(err, id)
	}
	return c.JSON(posting)
}

func (h *JobsHandler) SkillBreakdown(c fiber.Ctx) error {
	id := pathParam(c, "positionID")

	breakdown, err := h.uc.GetSkillBreakdown(c.Context(), id)
	if err != nil {
		return mapJobError(err, id)
	}
	return c.JSON(breakdown)
}

func (h *JobsHandler) RequiredSkills(c fiber.Ctx) error {
	id := pathParam(c, "positionID")

	skills, err := h.uc.RequiredSkills(c.Context(), id)
	if err != nil {
		return mapJobError(err, id)
	}
	return c.JSON(skills)
}

func (h *JobsHandler) RecommendedSkills(c fiber.Ctx) error {
	id := pathParam(c, "positionID")

	skills, err := h.uc.RecommendedSkills(c.Context(), id)
	if err != nil {
		return mapJobError(err, id)
	}
	return c.JSON(skills)
}

func mapJobError(err error, positionID string) error {
	if errors.Is(err, usecase.ErrNotFound) {
		return middleware.NewAppError(
			fiber.StatusNotFound,
			fmt.Sprintf("Job with ID %s not found", positionID),
			err,
		)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
}

// pathParam returns a route parameter with percent-encoding undone, so
// encoded spaces and raw spaces resolve identically.
func pathParam(c fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
