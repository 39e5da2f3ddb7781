package memory

import (
	"context"
	"sync"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  []match.Match
	byID   map[int64]int
	nextID int64
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		byID:   make(map[int64]int),
		nextID: 1,
	}
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return r.items[idx], true, nil
}

func (r *MatchRepository) ListByCountry(_ context.Context, countryID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.items {
		if item.Involves(countryID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) ListByYear(_ context.Context, year int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.items {
		if item.Date != nil && item.Date.Year() == year {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) InsertBatch(_ context.Context, items []match.Match) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.byID[item.ID] = len(r.items)
		r.items = append(r.items, item)
		out = append(out, item)
	}
	return out, nil
}
