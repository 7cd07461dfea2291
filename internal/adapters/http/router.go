package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/flyworld/internal/pkg/metrics"
	"github.com/samirrijal/flyworld/internal/pkg/telemetry"
)

const (
	requestTimeout = 15 * time.Second
	// Briefings fan out to four providers, each with its own retries.
	briefingTimeout = 30 * time.Second
)

// SetupRoutes registers all REST, GraphQL, and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(requestid.New())
	app.Use(SessionMiddleware())
	app.Use(telemetry.Middleware())

	// Propagate request and session IDs into slog context
	app.Use(RequestIDLogMiddleware())
	app.Use(AccessLogMiddleware())

	// Rate limiting: 120 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return newError(c, fiber.StatusTooManyRequests, "rate_limited", "too many requests, please try again later")
		},
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	app.Use(ETagMiddleware())
	app.Use(CachingMiddleware())

	// Health & readiness (no timeout, fast internal checks)
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	v1 := app.Group("/v1")
	v1.Get("/countries", timeout.NewWithContext(ListCountriesHandler(deps), requestTimeout))
	v1.Get("/countries/:key", timeout.NewWithContext(GetCountryHandler(deps), requestTimeout))
	v1.Get("/airlines", timeout.NewWithContext(ListAirlinesHandler(deps), requestTimeout))
	v1.Get("/distance", timeout.NewWithContext(DistanceHandler(deps), requestTimeout))
	v1.Get("/paths", timeout.NewWithContext(PathHandler(deps), requestTimeout))
	v1.Post("/quotes", timeout.NewWithContext(QuoteHandler(deps), requestTimeout))

	// Session state
	v1.Get("/settings", timeout.NewWithContext(GetSettingsHandler(deps), requestTimeout))
	v1.Patch("/settings", timeout.NewWithContext(PatchSettingsHandler(deps), requestTimeout))
	v1.Get("/history", timeout.NewWithContext(ListHistoryHandler(deps), requestTimeout))
	v1.Delete("/history", timeout.NewWithContext(ClearHistoryHandler(deps), requestTimeout))
	v1.Post("/history/:index/replay", timeout.NewWithContext(ReplayHistoryHandler(deps), requestTimeout))

	// Provider-backed endpoints
	v1.Get("/destinations/:key/briefing", timeout.NewWithContext(BriefingHandler(deps), briefingTimeout))
	v1.Get("/places/search", timeout.NewWithContext(PlaceSearchHandler(deps), requestTimeout))

	app.Post("/graphql", GraphQLHandler(deps))

	// API documentation (Swagger UI)
	SetupDocs(app)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/flights/animate", websocket.New(AnimateHandler(deps)))
	app.Get("/ws/searches", websocket.New(SearchRelayHandler(deps.NATS)))
}
