package usecase

import (
	"context"
	"fmt"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
)

// MatchDetail is one match with its nested goal events and, when the match
// was decided on penalties, its shootout.
type MatchDetail struct {
	Match    match.Match
	Goals    []goal.Goal
	Shootout *shootout.Shootout
}

type MatchService struct {
	matchRepo    match.Repository
	goalRepo     goal.Repository
	shootoutRepo shootout.Repository
}

func NewMatchService(
	matchRepo match.Repository,
	goalRepo goal.Repository,
	shootoutRepo shootout.Repository,
) *MatchService {
	return &MatchService{
		matchRepo:    matchRepo,
		goalRepo:     goalRepo,
		shootoutRepo: shootoutRepo,
	}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	sortMatchesByDate(items)
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	m, found, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MatchDetail{}, fmt.Errorf("%w: match %d", ErrNotFound, id)
	}

	goals, err := s.goalRepo.ListByMatch(ctx, id)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match goals: %w", err)
	}

	detail := MatchDetail{Match: m, Goals: goals}
	so, hasShootout, err := s.shootoutRepo.GetByMatch(ctx, id)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match shootout: %w", err)
	}
	if hasShootout {
		detail.Shootout = &so
	}

	return detail, nil
}
