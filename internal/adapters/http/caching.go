package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CachingMiddleware sets Cache-Control headers on GET responses based on endpoint.
// Handlers that set their own header win.
func CachingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() != fiber.MethodGet {
			return err
		}
		if existing := c.GetRespHeader(fiber.HeaderCacheControl); existing != "" {
			return err
		}

		path := c.Path()
		var ttl string

		switch {
		case path == "/v1/health" || path == "/v1/ready":
			ttl = "public, max-age=10"

		case path == "/metrics":
			ttl = "no-cache"

		// Catalog data only changes with a deploy.
		case strings.HasPrefix(path, "/v1/countries"), path == "/v1/airlines":
			ttl = "public, max-age=3600"

		case path == "/v1/distance" || path == "/v1/paths":
			ttl = "public, max-age=3600"

		// Session-scoped state must never be shared.
		case strings.HasPrefix(path, "/v1/settings"), strings.HasPrefix(path, "/v1/history"):
			ttl = "private, no-store"

		case strings.HasSuffix(path, "/briefing"):
			ttl = "private, max-age=300"

		case strings.HasPrefix(path, "/v1/places/search"):
			ttl = "public, max-age=86400"

		case strings.HasPrefix(path, "/v1/"):
			ttl = "public, max-age=300"
		}

		if ttl != "" {
			c.Set(fiber.HeaderCacheControl, ttl)
		}

		return err
	}
}
