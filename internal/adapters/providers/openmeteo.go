package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// OpenMeteo implements ports.WeatherProvider.
type OpenMeteo struct {
	baseURL string
	http    *client
}

// NewOpenMeteo creates a weather provider rooted at baseURL.
func NewOpenMeteo(baseURL string, opts Options) *OpenMeteo {
	return &OpenMeteo{baseURL: strings.TrimRight(baseURL, "/"), http: newClient("open-meteo", opts, nil)}
}

type openMeteoResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WeatherCode *int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current returns the current temperature and WMO weather code at a point.
func (p *OpenMeteo) Current(ctx context.Context, at domain.GeoPoint) (*domain.Weather, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(at.Lat))
	q.Set("longitude", formatCoord(at.Lon))
	q.Set("current_weather", "true")

	var resp openMeteoResponse
	if err := p.http.getJSON(ctx, p.baseURL+"/v1/forecast?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	cw := resp.CurrentWeather
	if cw == nil || cw.Temperature == nil || cw.WeatherCode == nil {
		return nil, fmt.Errorf("open-meteo: %w: current_weather missing", domain.ErrMalformedPayload)
	}
	return &domain.Weather{TemperatureC: *cw.Temperature, Code: *cw.WeatherCode}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
