package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-badge/internal/services/badge"
	"weather-badge/pkg/observe"
)

type routes struct {
	service *badge.Service
	l       *observe.Logger
}

func NewRouter(
	app *fiber.App,
	badgeService *badge.Service,
	l *observe.Logger,
) {
	r := &routes{
		service: badgeService,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/", r.handleBadgeCall)
}
