package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) parseDayParam(raw string) (time.Time, error) {
	return services.ParseDay(raw, handler.location)
}
