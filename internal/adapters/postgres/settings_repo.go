package postgres

import (
	"context"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// SettingsRepo implements ports.SettingsRepository.
type SettingsRepo struct {
	db *DB
}

func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, sessionID string) (*domain.Settings, error) {
	s := &domain.Settings{SessionID: sessionID}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT language, currency, distance_unit, temperature_unit, updated_at
		FROM session_settings WHERE session_id = $1
	`, sessionID).Scan(&s.Language, &s.Currency, &s.DistanceUnit, &s.TemperatureUnit, &s.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "settings")
	}
	return s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO session_settings (session_id, language, currency, distance_unit, temperature_unit, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO UPDATE SET
			language = EXCLUDED.language,
			currency = EXCLUDED.currency,
			distance_unit = EXCLUDED.distance_unit,
			temperature_unit = EXCLUDED.temperature_unit,
			updated_at = EXCLUDED.updated_at
	`, s.SessionID, s.Language, s.Currency, s.DistanceUnit, s.TemperatureUnit, s.UpdatedAt)
	return err
}
