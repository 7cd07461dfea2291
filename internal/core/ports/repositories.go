package ports

import (
	"context"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// CountryCatalog resolves selectable countries and airlines.
type CountryCatalog interface {
	List(lang string) []domain.Country
	Get(key, lang string) (domain.Country, error)
	Airline(key string) (domain.Airline, error)
	Airlines() []domain.Airline
}

// SettingsRepository persists per-session preferences.
type SettingsRepository interface {
	// Get returns domain.ErrNotFound when the session never saved settings.
	Get(ctx context.Context, sessionID string) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}

// HistoryRepository persists per-session search history.
type HistoryRepository interface {
	List(ctx context.Context, sessionID string) (domain.SearchHistory, error)
	// Replace atomically swaps the stored history for h.
	Replace(ctx context.Context, sessionID string, h domain.SearchHistory) error
	Clear(ctx context.Context, sessionID string) error
}
