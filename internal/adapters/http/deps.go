package http

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/flyworld/internal/core/usecases"
)

// Pinger is a backing service whose connectivity /v1/ready reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Countries *usecases.CountryService
	Flights   *usecases.FlightService
	Settings  *usecases.SettingsService
	History   *usecases.HistoryService
	Briefings *usecases.BriefingService
	Places    *usecases.PlaceService

	// AnimationDelay is the pause between animation frames; zero selects
	// usecases.DefaultFrameDelay.
	AnimationDelay time.Duration

	NATS  *nats.Conn
	DB    Pinger
	Cache Pinger
}
