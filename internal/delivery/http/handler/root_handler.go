package handler

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"
)

// RootHandler serves the UI page when one is present, and otherwise a JSON
// index of the API surface.
type RootHandler struct {
	publicDir string
}

func NewRootHandler(publicDir string) *RootHandler {
	return &RootHandler{publicDir: publicDir}
}

func (h *RootHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Index)
}

func (h *RootHandler) Index(c fiber.Ctx) error {
	for _, p := range h.candidatePaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return c.SendFile(p)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Job Skill Architecture API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"ui":              "/",
			"jobs":            "/api/jobs",
			"job_by_id":       "/api/jobs/{job_id}",
			"job_with_skills": "/api/jobs/{job_id}/skills",
			"skills":          "/api/skills",
			"skill_by_name":   "/api/skills/{skill_name}",
		},
	})
}

func (h *RootHandler) candidatePaths() []string {
	var paths []string
	if h.publicDir != "" {
		paths = append(paths, filepath.Join(h.publicDir, "index.html"))
	}
	return append(paths, filepath.Join("public", "index.html"))
}
