package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/samirrijal/flyworld/internal/adapters/catalog"
	"github.com/samirrijal/flyworld/internal/adapters/http"
	natsadapter "github.com/samirrijal/flyworld/internal/adapters/nats"
	"github.com/samirrijal/flyworld/internal/adapters/postgres"
	"github.com/samirrijal/flyworld/internal/adapters/providers"
	"github.com/samirrijal/flyworld/internal/adapters/valkey"
	"github.com/samirrijal/flyworld/internal/core/ports"
	"github.com/samirrijal/flyworld/internal/core/usecases"
	"github.com/samirrijal/flyworld/internal/pkg/config"
	"github.com/samirrijal/flyworld/internal/pkg/logging"
	"github.com/samirrijal/flyworld/internal/pkg/metrics"
	"github.com/samirrijal/flyworld/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("flyworld-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Database
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	go reportPoolStats(ctx, db)

	// Cache. Interfaces stay nil when valkey is down so services skip caching.
	var (
		cache     ports.CacheService
		cachePing http.Pinger
	)
	if vc, err := valkey.New(cfg.Valkey.Addr); err != nil {
		slog.Warn("valkey unavailable", "error", err)
	} else {
		defer vc.Close()
		cache, cachePing = vc, vc
	}

	// NATS
	var publisher ports.EventPublisher
	if pub, err := natsadapter.NewPublisher(cfg.NATS.URL); err != nil {
		slog.Warn("nats unavailable", "error", err)
	} else {
		defer pub.Close()
		publisher = pub
	}

	// Raw NATS connection for WebSocket relay
	natsConn, err := natsadapter.RawConn(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats ws conn unavailable", "error", err)
	} else {
		defer natsConn.Close()
	}

	// Catalog & providers
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	opts := providers.Options{
		Timeout:    cfg.Providers.Timeout(),
		MaxRetries: cfg.Providers.MaxRetries,
		UserAgent:  cfg.Providers.UserAgent,
	}

	// Use cases
	settingsSvc := usecases.NewSettingsService(postgres.NewSettingsRepo(db))
	historySvc := usecases.NewHistoryService(postgres.NewHistoryRepo(db))
	flightSvc := usecases.NewFlightService(cat, settingsSvc, historySvc, publisher, cfg.Flight.PathSteps)
	briefingSvc := usecases.NewBriefingService(cat, settingsSvc, usecases.BriefingProviders{
		Weather: providers.NewOpenMeteo(cfg.Providers.OpenMeteoURL, opts),
		Time:    providers.NewTimeAPI(cfg.Providers.TimeAPIURL, opts),
		Rates:   providers.NewERAPI(cfg.Providers.RatesURL, opts),
		Places:  providers.NewGeoapify(cfg.Providers.GeoapifyURL, cfg.Providers.GeoapifyKey, opts),
	}, cache)
	placeSvc := usecases.NewPlaceService(providers.NewNominatim(cfg.Providers.NominatimURL, opts), cache)

	deps := &http.Dependencies{
		Countries:      usecases.NewCountryService(cat),
		Flights:        flightSvc,
		Settings:       settingsSvc,
		History:        historySvc,
		Briefings:      briefingSvc,
		Places:         placeSvc,
		AnimationDelay: cfg.Flight.AnimationDelay(),
		NATS:           natsConn,
		DB:             db,
		Cache:          cachePing,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    256 * 1024,
		AppName:      "FlyWorld API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Session-ID",
		ExposeHeaders:    "X-Session-ID, Link, ETag",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// reportPoolStats refreshes the connection pool gauges until ctx ends.
func reportPoolStats(ctx context.Context, db *postgres.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateDBPoolMetrics(db.Pool.Stat())
		}
	}
}
