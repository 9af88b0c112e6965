package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"weather-badge/internal/models"
)

const contentTypeSVG = "image/svg+xml"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to resolve location"`
}

// GetWeatherBadge godoc
// @Summary Get the weather badge
// @Description Resolves the caller's approximate location from its network address and renders an SVG icon of the current weather there
// @Tags Badge
// @Produce image/svg+xml
// @Success 200 {string} string "SVG document"
// @Failure 502 {object} ErrorResponse "Upstream geolocation or weather lookup failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router / [get]
func (r *routes) handleBadgeCall(c *fiber.Ctx) error {
	forwardedFor := c.Get(fiber.HeaderXForwardedFor)
	remoteAddr := c.Context().RemoteAddr().String()

	svg, err := r.service.Render(c.Context(), forwardedFor, remoteAddr)
	if err != nil {
		r.l.Error(err, map[string]any{
			"remote":        remoteAddr,
			"forwarded_for": forwardedFor,
		})

		status := fiber.StatusInternalServerError
		msg := "Failed to render weather badge"
		switch {
		case errors.Is(err, models.ErrLocationUnavailable):
			status = fiber.StatusBadGateway
			msg = "Failed to resolve location"
		case errors.Is(err, models.ErrWeatherLookup):
			status = fiber.StatusBadGateway
			msg = "Failed to fetch weather data"
		}

		return c.Status(status).JSON(ErrorResponse{Error: msg})
	}

	c.Set(fiber.HeaderContentType, contentTypeSVG)
	return c.SendString(svg)
}
