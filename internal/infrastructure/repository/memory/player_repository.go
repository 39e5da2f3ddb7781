package memory

import (
	"context"
	"sync"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  []player.Player
	byID   map[int64]int
	nextID int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		byID:   make(map[int64]int),
		nextID: 1,
	}
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.items[idx], true, nil
}

func (r *PlayerRepository) ListByCountry(_ context.Context, countryID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, item := range r.items {
		if item.CountryID == countryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) InsertBatch(_ context.Context, items []player.Player) ([]player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.byID[item.ID] = len(r.items)
		r.items = append(r.items, item)
		out = append(out, item)
	}
	return out, nil
}
