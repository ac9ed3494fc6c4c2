package main

import (
	"time"

	"catalogview/internal/config"
	"catalogview/internal/handlers"
	"catalogview/internal/presenter"
	"catalogview/internal/repositories"
	"catalogview/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp wires the Fiber app serving the listing pages and the view API on top of catalog.
func NewApp(cfg config.Config, catalog repositories.ProductRepository) (*fiber.App, *services.ViewService) {
	// --- Services ---
	productService := services.NewProductService(catalog)
	viewService := services.NewViewService(repositories.NewMemoryViewRepository(), productService, cfg.PageSize)

	// --- Handlers ---
	viewHandler := handlers.NewViewHandler(viewService, presenter.New(cfg.PlaceholderImage))

	app := fiber.New(fiber.Config{
		AppName:     "catalogview",
		Views:       presenter.NewEngine(),
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	// --- Middleware ---
	app.Use(fiberrecover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Pages and API Routes ---
	viewHandler.RegisterPages(app)
	apiV1 := app.Group("/api/v1")
	viewHandler.RegisterRoutes(apiV1)

	return app, viewService
}
