package main

import (
	"context"
	"log"
	"log/slog"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/samirrijal/flyworld/internal/adapters/catalog"
	natsadapter "github.com/samirrijal/flyworld/internal/adapters/nats"
	"github.com/samirrijal/flyworld/internal/adapters/providers"
	"github.com/samirrijal/flyworld/internal/adapters/valkey"
	"github.com/samirrijal/flyworld/internal/core/usecases"
	"github.com/samirrijal/flyworld/internal/pkg/config"
	"github.com/samirrijal/flyworld/internal/pkg/logging"
	"github.com/samirrijal/flyworld/internal/pkg/telemetry"
	"github.com/samirrijal/flyworld/internal/workflows"
)

// briefer warms destination briefings ahead of the first request: every
// flight search event starts a Temporal workflow that fills the cache.
func main() {
	cfg, err := config.Load("flyworld-briefer")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Warming without a cache is pointless.
	cache, err := valkey.New(cfg.Valkey.Addr)
	if err != nil {
		log.Fatalf("valkey: %v", err)
	}
	defer cache.Close()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	opts := providers.Options{
		Timeout:    cfg.Providers.Timeout(),
		MaxRetries: cfg.Providers.MaxRetries,
		UserAgent:  cfg.Providers.UserAgent,
	}
	briefings := usecases.NewBriefingService(cat, nil, usecases.BriefingProviders{
		Weather: providers.NewOpenMeteo(cfg.Providers.OpenMeteoURL, opts),
		Time:    providers.NewTimeAPI(cfg.Providers.TimeAPIURL, opts),
		Rates:   providers.NewERAPI(cfg.Providers.RatesURL, opts),
		Places:  providers.NewGeoapify(cfg.Providers.GeoapifyURL, cfg.Providers.GeoapifyKey, opts),
	}, cache)

	// Connect to Temporal
	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		log.Fatalf("temporal client: %v", err)
	}
	defer c.Close()

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflows.DestinationBriefingWorkflow)
	w.RegisterActivity(&workflows.BriefingActivities{Briefings: briefings})
	if err := w.Start(); err != nil {
		log.Fatalf("worker: %v", err)
	}
	defer w.Stop()

	sub, err := natsadapter.NewSubscriber(cfg.NATS.URL)
	if err != nil {
		log.Fatalf("nats: %v", err)
	}
	defer sub.Close()

	prefetcher := workflows.NewPrefetcher(c, cfg.Temporal.TaskQueue)
	if err := sub.SubscribeFlightSearches(ctx, prefetcher.HandleFlightSearched); err != nil {
		log.Fatalf("subscribe: %v", err)
	}

	slog.Info("briefer started", "task_queue", cfg.Temporal.TaskQueue)
	<-worker.InterruptCh()
	slog.Info("briefer stopping")
}
