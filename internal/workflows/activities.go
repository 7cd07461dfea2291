package workflows

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
)

// BriefingActivities warms the briefing cache. Each activity reads through
// the BriefingService so the cached entries are exactly what a later
// briefing request looks up.
type BriefingActivities struct {
	Briefings *usecases.BriefingService
}

// ResolveDestination looks up the destination country.
func (a *BriefingActivities) ResolveDestination(ctx context.Context, key string) (domain.Country, error) {
	c, err := a.Briefings.Destination(key)
	if err != nil {
		return domain.Country{}, permanent(err)
	}
	return c, nil
}

// WarmWeather caches the current weather at the destination.
func (a *BriefingActivities) WarmWeather(ctx context.Context, at domain.GeoPoint) error {
	if _, err := a.Briefings.Weather(ctx, at); err != nil {
		return permanent(err)
	}
	activity.GetLogger(ctx).Debug("weather warmed", "lat", at.Lat, "lon", at.Lon)
	return nil
}

// WarmExchangeRate caches the dollar rate of currency.
func (a *BriefingActivities) WarmExchangeRate(ctx context.Context, currency string) error {
	if _, err := a.Briefings.USDRate(ctx, currency); err != nil {
		return permanent(err)
	}
	return nil
}

// WarmPlaces caches the sights near the destination.
func (a *BriefingActivities) WarmPlaces(ctx context.Context, at domain.GeoPoint) error {
	if _, err := a.Briefings.Sights(ctx, at); err != nil {
		return permanent(err)
	}
	return nil
}

// permanent stops Temporal from retrying errors another attempt cannot fix.
func permanent(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMalformedPayload):
		return temporal.NewNonRetryableApplicationError(err.Error(), domain.ErrorKind(err), err)
	}
	var status *domain.ProviderStatusError
	if errors.As(err, &status) && status.Code >= 400 && status.Code < 500 && status.Code != 429 {
		return temporal.NewNonRetryableApplicationError(err.Error(), domain.ErrorKind(err), err)
	}
	return err
}
