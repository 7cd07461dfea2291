package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
)

func entry(dest string) domain.SearchEntry {
	return domain.SearchEntry{
		Origin:      "Spain",
		Destination: dest,
		Class:       domain.ClassEconomic,
		Season:      domain.SeasonLow,
		Airline:     "standard",
	}
}

func TestSearchHistory_PushMovesDuplicateToFront(t *testing.T) {
	h := domain.SearchHistory{}.Push(entry("Japan")).Push(entry("Peru")).Push(entry("Chile"))
	h = h.Push(entry("Japan"))

	if len(h) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(h))
	}
	want := []string{"Japan", "Chile", "Peru"}
	for i, dest := range want {
		if h[i].Destination != dest {
			t.Errorf("position %d: expected %s, got %s", i, dest, h[i].Destination)
		}
	}
}

func TestSearchHistory_PushCapsAtMax(t *testing.T) {
	var h domain.SearchHistory
	for i := 0; i < domain.MaxHistory+5; i++ {
		h = h.Push(entry(fmt.Sprintf("Country %d", i)))
	}
	if len(h) != domain.MaxHistory {
		t.Fatalf("expected %d entries, got %d", domain.MaxHistory, len(h))
	}
	if h[0].Destination != fmt.Sprintf("Country %d", domain.MaxHistory+4) {
		t.Errorf("most recent should be first, got %s", h[0].Destination)
	}
}

func TestSearchHistory_PushDoesNotMutateReceiver(t *testing.T) {
	h := domain.SearchHistory{entry("Japan"), entry("Peru")}
	_ = h.Push(entry("Peru"))
	if h[0].Destination != "Japan" {
		t.Error("Push modified the original history")
	}
}

func TestHistoryService_RecordAndList(t *testing.T) {
	repo := newMockHistoryRepo()
	svc := usecases.NewHistoryService(repo)
	ctx := context.Background()

	if _, err := svc.Record(ctx, "s", entry("Japan")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.Record(ctx, "s", entry("Peru")); err != nil {
		t.Fatalf("record: %v", err)
	}

	h, err := svc.List(ctx, "s")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(h) != 2 || h[0].Destination != "Peru" {
		t.Errorf("unexpected history %+v", h)
	}

	other, _ := svc.List(ctx, "other")
	if other == nil || len(other) != 0 {
		t.Errorf("expected empty non-nil history, got %#v", other)
	}
}

func TestHistoryService_EntryOutOfRange(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.stored["s"] = domain.SearchHistory{entry("Japan")}
	svc := usecases.NewHistoryService(repo)

	for _, i := range []int{-1, 1, 10} {
		if _, err := svc.Entry(context.Background(), "s", i); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("index %d: expected ErrNotFound, got %v", i, err)
		}
	}
	e, err := svc.Entry(context.Background(), "s", 0)
	if err != nil || e.Destination != "Japan" {
		t.Errorf("unexpected entry %+v, %v", e, err)
	}
}

func TestHistoryService_Clear(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.stored["s"] = domain.SearchHistory{entry("Japan")}
	svc := usecases.NewHistoryService(repo)

	if err := svc.Clear(context.Background(), "s"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	h, _ := svc.List(context.Background(), "s")
	if len(h) != 0 {
		t.Errorf("expected empty history, got %d", len(h))
	}
}
