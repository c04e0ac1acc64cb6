package routes

import (
	"job-skill-api/internal/catalog"
	"job-skill-api/internal/config"
	"job-skill-api/internal/delivery/http/handler"
	"job-skill-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	root      *handler.RootHandler
	jobs      *handler.JobsHandler
	skills    *handler.SkillHandler
	skillsAPI *handler.SkillsAPIHandler
}

func NewRegistry(cfg config.Config, cat *catalog.Catalog) *Registry {
	jobUC := usecase.NewJobUsecase(cat)
	skillUC := usecase.NewSkillUsecase(cat)
	assertionUC := usecase.NewAssertionUsecase(cat)

	return &Registry{
		root:      handler.NewRootHandler(cfg.App.PublicDir),
		jobs:      handler.NewJobsHandler(jobUC),
		skills:    handler.NewSkillHandler(skillUC),
		skillsAPI: handler.NewSkillsAPIHandler(assertionUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.root.RegisterRoutes(app)
	r.skillsAPI.RegisterRoutes(app)

	api := app.Group("/api")
	r.jobs.RegisterRoutes(api)
	r.skills.RegisterRoutes(api)
}
