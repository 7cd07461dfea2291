package providers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// Geoapify implements ports.PlacesProvider.
type Geoapify struct {
	baseURL string
	apiKey  string
	http    *client
}

// NewGeoapify creates a points-of-interest provider. Without an apiKey
// every call fails with domain.ErrProviderUnavailable.
func NewGeoapify(baseURL, apiKey string, opts Options) *Geoapify {
	return &Geoapify{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    newClient("geoapify", opts, nil),
	}
}

type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			Name string  `json:"name"`
			Lat  float64 `json:"lat"`
			Lon  float64 `json:"lon"`
		} `json:"properties"`
	} `json:"features"`
}

// Sights returns named tourist sights within radiusMeters of a point.
func (p *Geoapify) Sights(ctx context.Context, at domain.GeoPoint, radiusMeters, limit int) ([]domain.Place, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("geoapify: api key not configured: %w", domain.ErrProviderUnavailable)
	}

	q := url.Values{}
	q.Set("categories", "tourism.sights")
	q.Set("filter", fmt.Sprintf("circle:%s,%s,%d", formatCoord(at.Lon), formatCoord(at.Lat), radiusMeters))
	q.Set("limit", fmt.Sprint(limit))
	q.Set("apiKey", p.apiKey)

	var resp geoapifyResponse
	if err := p.http.getJSON(ctx, p.baseURL+"/v2/places?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Features == nil {
		return nil, fmt.Errorf("geoapify: %w: features missing", domain.ErrMalformedPayload)
	}

	places := make([]domain.Place, 0, len(resp.Features))
	for _, f := range resp.Features {
		if f.Properties.Name == "" {
			continue
		}
		places = append(places, domain.Place{
			Name:     f.Properties.Name,
			Location: domain.GeoPoint{Lat: f.Properties.Lat, Lon: f.Properties.Lon},
		})
	}
	return places, nil
}
