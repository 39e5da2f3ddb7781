package memory

import (
	"context"
	"sync"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/formername"
)

type FormerNameRepository struct {
	mu     sync.RWMutex
	items  []formername.FormerName
	nextID int64
}

func NewFormerNameRepository() *FormerNameRepository {
	return &FormerNameRepository{nextID: 1}
}

func (r *FormerNameRepository) ListAll(_ context.Context) ([]formername.FormerName, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formername.FormerName, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *FormerNameRepository) ListByCountry(_ context.Context, countryID int64) ([]formername.FormerName, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []formername.FormerName
	for _, item := range r.items {
		if item.CountryID == countryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *FormerNameRepository) InsertBatch(_ context.Context, items []formername.FormerName) ([]formername.FormerName, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]formername.FormerName, 0, len(items))
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.items = append(r.items, item)
		out = append(out, item)
	}
	return out, nil
}
