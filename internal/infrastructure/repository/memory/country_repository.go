package memory

import (
	"context"
	"sync"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
)

type CountryRepository struct {
	mu     sync.RWMutex
	items  []country.Country
	byID   map[int64]int
	byName map[string]int
	nextID int64
}

func NewCountryRepository() *CountryRepository {
	return &CountryRepository{
		byID:   make(map[int64]int),
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (r *CountryRepository) ListAll(_ context.Context) ([]country.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]country.Country, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *CountryRepository) GetByID(_ context.Context, id int64) (country.Country, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return country.Country{}, false, nil
	}
	return r.items[idx], true, nil
}

func (r *CountryRepository) GetByName(_ context.Context, name string) (country.Country, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[name]
	if !ok {
		return country.Country{}, false, nil
	}
	return r.items[idx], true, nil
}

func (r *CountryRepository) InsertBatch(_ context.Context, items []country.Country) ([]country.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]country.Country, 0, len(items))
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.byID[item.ID] = len(r.items)
		r.byName[item.Name] = len(r.items)
		r.items = append(r.items, item)
		out = append(out, item)
	}
	return out, nil
}
