package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/ports"
	"github.com/samirrijal/flyworld/internal/pkg/i18n"
)

// SettingsService handles per-session preferences.
type SettingsService struct {
	repo ports.SettingsRepository
	now  func() time.Time
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo, now: time.Now}
}

// Get returns the session's settings, or the defaults if none were saved.
func (s *SettingsService) Get(ctx context.Context, sessionID string) (*domain.Settings, error) {
	if sessionID == "" {
		return nil, domain.Invalid("session id is required")
	}
	settings, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		d := domain.DefaultSettings(sessionID)
		return &d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Update applies a partial change and persists the result. Nothing is
// stored when any field is invalid.
func (s *SettingsService) Update(ctx context.Context, sessionID string, patch domain.SettingsPatch) (*domain.Settings, error) {
	if err := ValidateSettingsPatch(patch); err != nil {
		return nil, err
	}

	settings, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if patch.Currency != nil {
		settings.Currency = *patch.Currency
	}
	if patch.DistanceUnit != nil {
		settings.DistanceUnit = *patch.DistanceUnit
	}
	if patch.TemperatureUnit != nil {
		settings.TemperatureUnit = *patch.TemperatureUnit
	}
	settings.UpdatedAt = s.now().UTC()

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// ValidateSettingsPatch checks every non-nil field of patch.
func ValidateSettingsPatch(p domain.SettingsPatch) error {
	if p.Language != nil && !i18n.IsSupported(*p.Language) {
		return domain.Invalid("unsupported language %q", *p.Language)
	}
	if p.Currency != nil && !SupportedCurrency(*p.Currency) {
		return domain.Invalid("unsupported currency %q", *p.Currency)
	}
	if p.DistanceUnit != nil && !validDistanceUnit(*p.DistanceUnit) {
		return domain.Invalid("distance unit must be %q or %q", domain.UnitKm, domain.UnitMiles)
	}
	if p.TemperatureUnit != nil && *p.TemperatureUnit != domain.UnitCelsius && *p.TemperatureUnit != domain.UnitFahrenheit {
		return domain.Invalid("temperature unit must be %q or %q", domain.UnitCelsius, domain.UnitFahrenheit)
	}
	return nil
}

func validDistanceUnit(u string) bool {
	return u == domain.UnitKm || u == domain.UnitMiles
}
