package usecases

import (
	"context"
	"fmt"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/ports"
)

// HistoryService keeps the recent searches of each session.
type HistoryService struct {
	repo ports.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo ports.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns the session's searches, most recent first.
func (s *HistoryService) List(ctx context.Context, sessionID string) (domain.SearchHistory, error) {
	h, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if h == nil {
		h = domain.SearchHistory{}
	}
	return h, nil
}

// Record moves e to the front of the session's history.
func (s *HistoryService) Record(ctx context.Context, sessionID string, e domain.SearchEntry) (domain.SearchHistory, error) {
	h, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	h = h.Push(e)
	if err := s.repo.Replace(ctx, sessionID, h); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	return h, nil
}

// Entry returns the search at position index.
func (s *HistoryService) Entry(ctx context.Context, sessionID string, index int) (domain.SearchEntry, error) {
	h, err := s.List(ctx, sessionID)
	if err != nil {
		return domain.SearchEntry{}, err
	}
	if index < 0 || index >= len(h) {
		return domain.SearchEntry{}, fmt.Errorf("history entry %d: %w", index, domain.ErrNotFound)
	}
	return h[index], nil
}

// Clear forgets every search of the session.
func (s *HistoryService) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
