package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// HistoryRepo implements ports.HistoryRepository.
type HistoryRepo struct {
	db *DB
}

func NewHistoryRepo(db *DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) List(ctx context.Context, sessionID string) (domain.SearchHistory, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT origin, destination, class, season, airline
		FROM search_history WHERE session_id = $1
		ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	h := domain.SearchHistory{}
	for rows.Next() {
		var e domain.SearchEntry
		if err := rows.Scan(&e.Origin, &e.Destination, &e.Class, &e.Season, &e.Airline); err != nil {
			return nil, err
		}
		h = append(h, e)
	}
	return h, rows.Err()
}

// Replace swaps the session's rows inside one transaction so readers never
// see a partial history.
func (r *HistoryRepo) Replace(ctx context.Context, sessionID string, h domain.SearchHistory) error {
	if len(h) > domain.MaxHistory {
		h = h[:domain.MaxHistory]
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM search_history WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}

	batch := &pgx.Batch{}
	for i, e := range h {
		batch.Queue(`
			INSERT INTO search_history (session_id, position, origin, destination, class, season, airline)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, sessionID, i, e.Origin, e.Destination, string(e.Class), string(e.Season), e.Airline)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *HistoryRepo) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM search_history WHERE session_id = $1`, sessionID)
	return err
}
