package ports

import (
	"context"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// WeatherProvider returns current conditions at a coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, at domain.GeoPoint) (*domain.Weather, error)
}

// TimeProvider returns the wall-clock time at a coordinate.
type TimeProvider interface {
	LocalTime(ctx context.Context, at domain.GeoPoint) (*domain.LocalTime, error)
}

// ExchangeRateProvider returns how many units of currency one US dollar buys.
type ExchangeRateProvider interface {
	USDRate(ctx context.Context, currency string) (float64, error)
}

// PlacesProvider lists tourist sights around a coordinate.
type PlacesProvider interface {
	Sights(ctx context.Context, at domain.GeoPoint, radiusMeters, limit int) ([]domain.Place, error)
}

// Geocoder resolves free text to a place.
type Geocoder interface {
	Search(ctx context.Context, query string) (*domain.Place, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishFlightSearched(ctx context.Context, event *domain.FlightSearched) error
}

// EventSubscriber subscribes to domain events from a message broker.
type EventSubscriber interface {
	SubscribeFlightSearches(ctx context.Context, handler func(ctx context.Context, event *domain.FlightSearched) error) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
