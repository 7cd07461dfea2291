package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/ports"
	"github.com/samirrijal/flyworld/internal/pkg/i18n"
)

// Cache lifetimes of provider answers, in seconds.
const (
	WeatherTTL = 10 * 60
	RatesTTL   = 60 * 60
	PlacesTTL  = 24 * 60 * 60
)

const (
	sightsRadiusMeters = 10_000
	sightsLimit        = 5
	localTimeLayout    = "02/01 15:04"
)

// Briefing part names, used as keys of Briefing.Errors.
const (
	PartWeather   = "weather"
	PartLocalTime = "local_time"
	PartExchange  = "exchange"
	PartPlaces    = "places"
)

var weatherKeys = map[int]string{
	0:  "clear_sky",
	1:  "mainly_clear",
	2:  "partly_cloudy",
	3:  "overcast",
	45: "foggy",
	48: "depositing_rime_fog",
	51: "light_drizzle",
	53: "moderate_drizzle",
	55: "dense_drizzle",
	61: "slight_rain",
	63: "moderate_rain",
	65: "heavy_rain",
	71: "slight_snowfall",
	73: "heavy_snowfall",
	95: "thunderstorm",
}

// BriefingProviders groups the upstreams a briefing is assembled from.
type BriefingProviders struct {
	Weather ports.WeatherProvider
	Time    ports.TimeProvider
	Rates   ports.ExchangeRateProvider
	Places  ports.PlacesProvider
}

// BriefingService assembles destination briefings from external providers.
type BriefingService struct {
	catalog   ports.CountryCatalog
	settings  *SettingsService
	providers BriefingProviders
	cache     ports.CacheService
}

// NewBriefingService creates a new BriefingService. cache may be nil.
func NewBriefingService(catalog ports.CountryCatalog, settings *SettingsService, providers BriefingProviders, cache ports.CacheService) *BriefingService {
	return &BriefingService{catalog: catalog, settings: settings, providers: providers, cache: cache}
}

// Briefing fetches every part concurrently. A failing part is reported in
// Briefing.Errors and does not fail the others.
func (s *BriefingService) Briefing(ctx context.Context, sessionID, destination string) (*domain.Briefing, error) {
	prefs := domain.DefaultSettings(sessionID)
	if sessionID != "" && s.settings != nil {
		p, err := s.settings.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		prefs = *p
	}

	country, err := s.catalog.Get(destination, prefs.Language)
	if err != nil {
		return nil, err
	}

	var (
		weather *domain.Weather
		local   *domain.LocalTime
		rate    float64
		sights  []domain.Place

		mu   sync.Mutex
		errs = map[string]domain.PartError{}
	)
	fail := func(part string, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs[part] = domain.PartError{Kind: domain.ErrorKind(err), Message: err.Error()}
	}

	var g errgroup.Group
	g.Go(func() error {
		w, err := s.Weather(ctx, country.Location)
		if err != nil {
			fail(PartWeather, err)
			return nil
		}
		weather = w
		return nil
	})
	g.Go(func() error {
		t, err := s.providers.Time.LocalTime(ctx, country.Location)
		if err != nil {
			fail(PartLocalTime, err)
			return nil
		}
		local = t
		return nil
	})
	if country.Currency != "" {
		g.Go(func() error {
			r, err := s.USDRate(ctx, country.Currency)
			if err != nil {
				fail(PartExchange, err)
				return nil
			}
			rate = r
			return nil
		})
	}
	g.Go(func() error {
		p, err := s.Sights(ctx, country.Location)
		if err != nil {
			fail(PartPlaces, err)
			return nil
		}
		sights = p
		return nil
	})
	_ = g.Wait()

	b := &domain.Briefing{
		Destination: country,
		Places:      make([]string, 0, len(sights)),
	}
	if weather != nil {
		b.Weather = weatherReport(prefs, weather)
	}
	if local != nil {
		b.LocalTime = local.Time.Format(localTimeLayout)
		b.TimeZone = local.TimeZone
	}
	if rate > 0 {
		b.Exchange = &domain.ExchangeInfo{
			Currency:   country.Currency,
			USDToLocal: rate,
			LocalToUSD: 1 / rate,
		}
	}
	for _, p := range sights {
		b.Places = append(b.Places, p.Name)
	}
	b.Tips = Tips(prefs.Language, weather, country.Currency)
	if len(errs) > 0 {
		b.Errors = errs
	}
	return b, nil
}

// Weather returns current conditions at a point, read through the cache.
func (s *BriefingService) Weather(ctx context.Context, at domain.GeoPoint) (*domain.Weather, error) {
	key := fmt.Sprintf("weather:%.2f:%.2f", at.Lat, at.Lon)
	var w domain.Weather
	if s.cached(ctx, key, &w) {
		return &w, nil
	}

	fresh, err := s.providers.Weather.Current(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	s.store(ctx, key, fresh, WeatherTTL)
	return fresh, nil
}

// USDRate returns how much currency one dollar buys, read through the cache.
func (s *BriefingService) USDRate(ctx context.Context, currency string) (float64, error) {
	currency = strings.ToUpper(currency)
	if currency == "USD" {
		return 1, nil
	}
	key := "rates:USD:" + currency
	var rate float64
	if s.cached(ctx, key, &rate) {
		return rate, nil
	}

	rate, err := s.providers.Rates.USDRate(ctx, currency)
	if err != nil {
		return 0, fmt.Errorf("exchange rate: %w", err)
	}
	s.store(ctx, key, rate, RatesTTL)
	return rate, nil
}

// Sights returns tourist places near a point, read through the cache.
func (s *BriefingService) Sights(ctx context.Context, at domain.GeoPoint) ([]domain.Place, error) {
	key := fmt.Sprintf("places:%.3f:%.3f", at.Lat, at.Lon)
	var places []domain.Place
	if s.cached(ctx, key, &places) {
		return places, nil
	}

	places, err := s.providers.Places.Sights(ctx, at, sightsRadiusMeters, sightsLimit)
	if err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}
	s.store(ctx, key, places, PlacesTTL)
	return places, nil
}

// Destination resolves a country for cache warming.
func (s *BriefingService) Destination(key string) (domain.Country, error) {
	return s.catalog.Get(key, i18n.DefaultLanguage)
}

func (s *BriefingService) cached(ctx context.Context, key string, v any) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *BriefingService) store(ctx context.Context, key string, v any, ttl int) {
	if s.cache == nil {
		return
	}
	if data, err := json.Marshal(v); err == nil {
		_ = s.cache.Set(ctx, key, data, ttl)
	}
}

func weatherReport(prefs domain.Settings, w *domain.Weather) *domain.WeatherReport {
	temp, unit := w.TemperatureC, domain.UnitCelsius
	if prefs.TemperatureUnit == domain.UnitFahrenheit {
		temp, unit = CelsiusToFahrenheit(temp), domain.UnitFahrenheit
	}
	return &domain.WeatherReport{
		Temperature: math.Round(temp*10) / 10,
		Unit:        unit,
		Code:        w.Code,
		Description: WeatherDescription(prefs.Language, w.Code),
	}
}

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// WeatherDescription names a WMO weather code in lang.
func WeatherDescription(lang string, code int) string {
	key, ok := weatherKeys[code]
	if !ok {
		key = "unknown"
	}
	return i18n.T(lang, key)
}

// Tips returns travel advice for the destination conditions. weather may be
// nil when it could not be fetched.
func Tips(lang string, weather *domain.Weather, currency string) []string {
	var keys []string
	if weather != nil {
		switch {
		case weather.TemperatureC >= 30:
			keys = append(keys, "tip_shirt")
		case weather.TemperatureC <= 10:
			keys = append(keys, "tip_coat")
		}
		switch weather.Code {
		case 61, 63, 65:
			keys = append(keys, "tip_umbrella")
		case 95:
			keys = append(keys, "tip_storms")
		}
	}
	if !strings.EqualFold(currency, "USD") {
		keys = append(keys, "tip_exchange")
	}
	if len(keys) == 0 {
		keys = append(keys, "tip_none")
	}

	tips := make([]string, len(keys))
	for i, k := range keys {
		tips[i] = i18n.T(lang, k)
	}
	return tips
}
