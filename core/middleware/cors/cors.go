package cors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/cors"
)

// New returns a CORS middleware allowing the given origins.
func New(origins []string) fiber.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-API-Key", "X-Ray-ID"},
		ExposedHeaders:   []string{"X-Cache-Status", "X-Ray-ID"},
		AllowCredentials: true,
	})
	return adaptor.HTTPMiddleware(c.Handler)
}
