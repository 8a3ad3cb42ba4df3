package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestResultRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Results()

	res := &GameResult{
		ID:       uuid.New().String(),
		Score:    180,
		Popped:   17,
		Tickets:  12,
		Duration: 30.0,
	}
	if err := repo.Create(res); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if res.PlayedAt.IsZero() {
		t.Error("expected create to stamp played_at")
	}

	got, err := repo.GetByID(res.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Score != 180 || got.Popped != 17 || got.Tickets != 12 {
		t.Errorf("expected score=180 popped=17 tickets=12, got %+v", got)
	}
	if got.Duration != 30.0 {
		t.Errorf("expected duration 30, got %v", got.Duration)
	}
}

func TestResultRepository_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Results().GetByID("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResultRepository_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	repo := s.Results()

	base := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	scores := []int{50, 120, -40}
	for i, score := range scores {
		res := &GameResult{
			ID:       uuid.New().String(),
			Score:    score,
			Popped:   i,
			Tickets:  (i - 15) * 6,
			Duration: 30.0,
			PlayedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(res); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	all, err := repo.List(0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}
	if all[0].Score != -40 || all[2].Score != 50 {
		t.Errorf("expected newest first, got scores %d, %d, %d",
			all[0].Score, all[1].Score, all[2].Score)
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatalf("limited list failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 results with limit, got %d", len(limited))
	}
	if limited[0].Score != -40 {
		t.Errorf("expected newest result first with limit, got score %d", limited[0].Score)
	}
}

func TestResultRepository_Best(t *testing.T) {
	s := newTestStore(t)
	repo := s.Results()

	best, err := repo.Best()
	if err != nil {
		t.Fatalf("best on empty table failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected best 0 with no games, got %d", best)
	}

	for _, score := range []int{40, 220, -90, 110} {
		res := &GameResult{ID: uuid.New().String(), Score: score, Duration: 30.0}
		if err := repo.Create(res); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	best, err = repo.Best()
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	if best != 220 {
		t.Errorf("expected best 220, got %d", best)
	}
}
