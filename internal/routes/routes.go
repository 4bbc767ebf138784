package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/catalystlab/catalyst-backend/internal/config"
	"github.com/catalystlab/catalyst-backend/internal/handlers"
	"github.com/catalystlab/catalyst-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	trainingHandler *handlers.TrainingHandler,
	progressHandler *handlers.ProgressHandler,
	responseHandler *handlers.ResponseHandler,
	formHandler *handlers.FormHandler,
	processHandler *handlers.ProcessHandler,
	exportHandler *handlers.ExportHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP. Autosave fires on every
	// field blur, so this sits well above normal typing cadence.
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid access token.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	training := protected.Group("/training")
	training.Get("/days", trainingHandler.ListDays)
	training.Get("/days/:id", trainingHandler.GetDay)
	training.Get("/days/:id/steps/:num/form", formHandler.StepForm)
	training.Get("/steps/:id", trainingHandler.GetStep)
	training.Get("/tools", trainingHandler.ListTools)
	training.Get("/tools/:name", trainingHandler.GetTool)

	progress := protected.Group("/progress")
	progress.Get("/", progressHandler.List)
	progress.Get("/day/:dayId", progressHandler.ListByDay)
	progress.Post("/step/:stepId", progressHandler.UpdateStep)

	responses := protected.Group("/responses")
	responses.Get("/", responseHandler.List)
	responses.Post("/", responseHandler.Upsert)
	responses.Post("/batch", responseHandler.UpsertBatch)
	responses.Get("/day/:dayId", responseHandler.ListByDay)
	responses.Get("/step/:stepId", responseHandler.ListByStep)

	processes := protected.Group("/processes")
	processes.Get("/", processHandler.List)
	processes.Post("/", processHandler.Create)
	processes.Get("/:id", processHandler.Get)
	processes.Put("/:id", processHandler.Update)
	processes.Delete("/:id", processHandler.Delete)
	processes.Get("/:id/form", processHandler.Form)
	processes.Get("/:id/responses", processHandler.ListResponses)
	processes.Post("/:id/responses", processHandler.SaveResponses)
	processes.Post("/:id/steps/:stepId/complete", processHandler.CompleteStep)

	protected.Get("/export/process/:id", exportHandler.ExportProcess)
}
