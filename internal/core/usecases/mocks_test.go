package usecases_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// --- Mock CountryCatalog ---

type mockCatalog struct {
	countries map[string]domain.Country
	airlines  map[string]domain.Airline
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		countries: map[string]domain.Country{
			"origin":    {Key: "Origin", Name: "Origin", Location: domain.GeoPoint{Lat: 0, Lon: 0}, Currency: "USD"},
			"near":      {Key: "Near", Name: "Near", Location: domain.GeoPoint{Lat: 0, Lon: 9}, Currency: "EUR"},
			"far":       {Key: "Far", Name: "Far", Location: domain.GeoPoint{Lat: 0, Lon: 120}, Currency: "JPY"},
			"stateside": {Key: "Stateside", Name: "Stateside", Location: domain.GeoPoint{Lat: 40, Lon: -100}, Currency: "USD"},
		},
		airlines: map[string]domain.Airline{
			"low-cost": {Key: "low-cost", Labels: map[string]string{"en": "Low-cost"}, PriceMultiplier: 0.8, SpeedKmh: 850, MarkerIcon: "normal.png"},
			"standard": {Key: "standard", Labels: map[string]string{"en": "Standard", "es": "Estándar"}, PriceMultiplier: 1, SpeedKmh: 900, MarkerIcon: "normal.png"},
			"premium":  {Key: "premium", Labels: map[string]string{"en": "Premium"}, PriceMultiplier: 1.3, SpeedKmh: 950, MarkerIcon: "premium.png"},
		},
	}
}

func (m *mockCatalog) List(lang string) []domain.Country {
	out := make([]domain.Country, 0, len(m.countries))
	for _, c := range m.countries {
		out = append(out, c)
	}
	return out
}

func (m *mockCatalog) Get(key, lang string) (domain.Country, error) {
	c, ok := m.countries[strings.ToLower(key)]
	if !ok {
		return domain.Country{}, fmt.Errorf("country %q: %w", key, domain.ErrNotFound)
	}
	return c, nil
}

func (m *mockCatalog) Airline(key string) (domain.Airline, error) {
	a, ok := m.airlines[key]
	if !ok {
		return domain.Airline{}, domain.ErrNotFound
	}
	return a, nil
}

func (m *mockCatalog) Airlines() []domain.Airline {
	out := make([]domain.Airline, 0, len(m.airlines))
	for _, a := range m.airlines {
		out = append(out, a)
	}
	return out
}

// --- Mock SettingsRepository ---

type mockSettingsRepo struct {
	mu      sync.Mutex
	stored  map[string]domain.Settings
	getErr  error
	upserts int
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{stored: map[string]domain.Settings{}}
}

func (m *mockSettingsRepo) Get(ctx context.Context, sessionID string) (*domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.stored[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *mockSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored[s.SessionID] = *s
	m.upserts++
	return nil
}

// --- Mock HistoryRepository ---

type mockHistoryRepo struct {
	mu      sync.Mutex
	stored  map[string]domain.SearchHistory
	cleared []string
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{stored: map[string]domain.SearchHistory{}}
}

func (m *mockHistoryRepo) List(ctx context.Context, sessionID string) (domain.SearchHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stored[sessionID], nil
}

func (m *mockHistoryRepo) Replace(ctx context.Context, sessionID string, h domain.SearchHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored[sessionID] = h
	return nil
}

func (m *mockHistoryRepo) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stored, sessionID)
	m.cleared = append(m.cleared, sessionID)
	return nil
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	mu     sync.Mutex
	events []domain.FlightSearched
	err    error
}

func (m *mockPublisher) PublishFlightSearched(ctx context.Context, e *domain.FlightSearched) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *e)
	return m.err
}

// --- Mock CacheService ---

type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]int
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// --- Mock providers ---

type mockWeather struct {
	fn    func(ctx context.Context, at domain.GeoPoint) (*domain.Weather, error)
	calls int
}

func (m *mockWeather) Current(ctx context.Context, at domain.GeoPoint) (*domain.Weather, error) {
	m.calls++
	return m.fn(ctx, at)
}

type mockTime struct {
	fn func(ctx context.Context, at domain.GeoPoint) (*domain.LocalTime, error)
}

func (m *mockTime) LocalTime(ctx context.Context, at domain.GeoPoint) (*domain.LocalTime, error) {
	return m.fn(ctx, at)
}

type mockRates struct {
	fn    func(ctx context.Context, currency string) (float64, error)
	calls int
}

func (m *mockRates) USDRate(ctx context.Context, currency string) (float64, error) {
	m.calls++
	return m.fn(ctx, currency)
}

type mockPlaces struct {
	fn func(ctx context.Context, at domain.GeoPoint, radius, limit int) ([]domain.Place, error)
}

func (m *mockPlaces) Sights(ctx context.Context, at domain.GeoPoint, radius, limit int) ([]domain.Place, error) {
	return m.fn(ctx, at, radius, limit)
}

type mockGeocoder struct {
	fn    func(ctx context.Context, query string) (*domain.Place, error)
	calls int
}

func (m *mockGeocoder) Search(ctx context.Context, query string) (*domain.Place, error) {
	m.calls++
	return m.fn(ctx, query)
}
