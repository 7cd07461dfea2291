package providers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// TimeAPI implements ports.TimeProvider with timeapi.io.
type TimeAPI struct {
	baseURL string
	http    *client
}

// NewTimeAPI creates a local time provider rooted at baseURL.
func NewTimeAPI(baseURL string, opts Options) *TimeAPI {
	return &TimeAPI{baseURL: strings.TrimRight(baseURL, "/"), http: newClient("timeapi", opts, nil)}
}

type timeAPIResponse struct {
	TimeZone         string `json:"timeZone"`
	CurrentLocalTime string `json:"currentLocalTime"`
}

// timeapi.io reports wall-clock time without an offset.
const localLayout = "2006-01-02T15:04:05.999999999"

// LocalTime returns the current time in the zone containing a point.
func (p *TimeAPI) LocalTime(ctx context.Context, at domain.GeoPoint) (*domain.LocalTime, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(at.Lat))
	q.Set("longitude", formatCoord(at.Lon))

	var resp timeAPIResponse
	if err := p.http.getJSON(ctx, p.baseURL+"/api/TimeZone/coordinate?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.CurrentLocalTime == "" {
		return nil, fmt.Errorf("timeapi: %w: currentLocalTime missing", domain.ErrMalformedPayload)
	}

	t, err := parseLocalTime(resp.CurrentLocalTime, resp.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("timeapi: %w: %v", domain.ErrMalformedPayload, err)
	}
	return &domain.LocalTime{Time: t, TimeZone: resp.TimeZone}, nil
}

func parseLocalTime(raw, zone string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	loc := time.UTC
	if zone != "" {
		if l, err := time.LoadLocation(zone); err == nil {
			loc = l
		}
	}
	return time.ParseInLocation(localLayout, raw, loc)
}
