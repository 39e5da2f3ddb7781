package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
)

// GoalRepository joins against the player and country repositories for the
// scorer leaderboard, mirroring the SQL aggregate the postgres variant runs.
type GoalRepository struct {
	mu        sync.RWMutex
	items     []goal.Goal
	nextID    int64
	players   *PlayerRepository
	countries *CountryRepository
}

func NewGoalRepository(players *PlayerRepository, countries *CountryRepository) *GoalRepository {
	return &GoalRepository{
		nextID:    1,
		players:   players,
		countries: countries,
	}
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []goal.Goal
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *GoalRepository) ListByPlayer(_ context.Context, playerID int64) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []goal.Goal
	for _, item := range r.items {
		if item.PlayerID == playerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *GoalRepository) ListScorerTotals(ctx context.Context, limit int) ([]goal.ScorerTotal, error) {
	r.mu.RLock()
	totals := make(map[int64]int)
	for _, item := range r.items {
		totals[item.PlayerID]++
	}
	r.mu.RUnlock()

	out := make([]goal.ScorerTotal, 0, len(totals))
	for playerID, count := range totals {
		row := goal.ScorerTotal{PlayerID: playerID, TotalGoals: count}
		if pl, found, err := r.players.GetByID(ctx, playerID); err == nil && found {
			row.PlayerName = pl.Name
			if c, cFound, cErr := r.countries.GetByID(ctx, pl.CountryID); cErr == nil && cFound {
				row.CountryName = c.Name
			}
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGoals != out[j].TotalGoals {
			return out[i].TotalGoals > out[j].TotalGoals
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *GoalRepository) InsertBatch(_ context.Context, items []goal.Goal) ([]goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]goal.Goal, 0, len(items))
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.items = append(r.items, item)
		out = append(out, item)
	}
	return out, nil
}
