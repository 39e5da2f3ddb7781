package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// List returns all players, or only the given country's players when
// countryID is set.
func (s *PlayerService) List(ctx context.Context, countryID *int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	var (
		items []player.Player
		err   error
	)
	if countryID != nil {
		items, err = s.playerRepo.ListByCountry(ctx, *countryID)
	} else {
		items, err = s.playerRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	p, found, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player %d", ErrNotFound, id)
	}
	return p, nil
}
