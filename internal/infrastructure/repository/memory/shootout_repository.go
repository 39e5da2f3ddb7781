package memory

import (
	"context"
	"sync"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
)

type ShootoutRepository struct {
	mu     sync.RWMutex
	items  []shootout.Shootout
	nextID int64
}

func NewShootoutRepository() *ShootoutRepository {
	return &ShootoutRepository{nextID: 1}
}

func (r *ShootoutRepository) GetByMatch(_ context.Context, matchID int64) (shootout.Shootout, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.MatchID == matchID {
			return item, true, nil
		}
	}
	return shootout.Shootout{}, false, nil
}

func (r *ShootoutRepository) InsertBatch(_ context.Context, items []shootout.Shootout) ([]shootout.Shootout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]shootout.Shootout, 0, len(items))
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.items = append(r.items, item)
		out = append(out, item)
	}
	return out, nil
}
