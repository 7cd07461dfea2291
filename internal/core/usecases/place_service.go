package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/ports"
)

// PlaceService resolves free-text place names to coordinates.
type PlaceService struct {
	geocoder ports.Geocoder
	cache    ports.CacheService
}

// NewPlaceService creates a new PlaceService. cache may be nil.
func NewPlaceService(geocoder ports.Geocoder, cache ports.CacheService) *PlaceService {
	return &PlaceService{geocoder: geocoder, cache: cache}
}

// Search returns the best match for query.
func (s *PlaceService) Search(ctx context.Context, query string) (*domain.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.Invalid("search query must not be empty")
	}

	key := "geocode:" + strings.ToLower(query)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var p domain.Place
			if err := json.Unmarshal(data, &p); err == nil {
				return &p, nil
			}
		}
	}

	place, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(place); err == nil {
			_ = s.cache.Set(ctx, key, data, PlacesTTL)
		}
	}
	return place, nil
}
