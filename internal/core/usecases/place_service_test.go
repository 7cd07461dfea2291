package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
)

func TestPlaceService_Search(t *testing.T) {
	geo := &mockGeocoder{fn: func(ctx context.Context, query string) (*domain.Place, error) {
		return &domain.Place{Name: "Bilbao, Biscay, Spain", Location: domain.GeoPoint{Lat: 43.26, Lon: -2.93}}, nil
	}}
	svc := usecases.NewPlaceService(geo, newMockCache())

	p, err := svc.Search(context.Background(), "  Bilbao ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Location.Lat != 43.26 {
		t.Errorf("unexpected place %+v", p)
	}

	// Second lookup is served from cache.
	if _, err := svc.Search(context.Background(), "bilbao"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geo.calls != 1 {
		t.Errorf("expected 1 geocoder call, got %d", geo.calls)
	}
}

func TestPlaceService_EmptyQuery(t *testing.T) {
	svc := usecases.NewPlaceService(&mockGeocoder{}, nil)
	_, err := svc.Search(context.Background(), "   ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlaceService_NoMatch(t *testing.T) {
	geo := &mockGeocoder{fn: func(ctx context.Context, query string) (*domain.Place, error) {
		return nil, fmt.Errorf("nominatim: %w", domain.ErrNotFound)
	}}
	svc := usecases.NewPlaceService(geo, nil)

	_, err := svc.Search(context.Background(), "Atlantis")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
