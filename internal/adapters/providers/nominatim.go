package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// Nominatim implements ports.Geocoder with the OpenStreetMap search API.
// Requests are limited to one per second as its usage policy demands.
type Nominatim struct {
	baseURL string
	http    *client
}

// NewNominatim creates a geocoder rooted at baseURL.
func NewNominatim(baseURL string, opts Options) *Nominatim {
	return &Nominatim{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newClient("nominatim", opts, rate.NewLimiter(rate.Limit(1), 1)),
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns the first match for query.
func (p *Nominatim) Search(ctx context.Context, query string) (*domain.Place, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []nominatimResult
	if err := p.http.getJSON(ctx, p.baseURL+"/search?"+q.Encode(), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("nominatim: %q: %w", query, domain.ErrNotFound)
	}

	r := results[0]
	lat, errLat := strconv.ParseFloat(r.Lat, 64)
	lon, errLon := strconv.ParseFloat(r.Lon, 64)
	if errLat != nil || errLon != nil {
		return nil, fmt.Errorf("nominatim: %w: bad coordinates %q,%q", domain.ErrMalformedPayload, r.Lat, r.Lon)
	}
	return &domain.Place{Name: r.DisplayName, Location: domain.GeoPoint{Lat: lat, Lon: lon}}, nil
}
