package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
)

const defaultTopScorersLimit = 10

// ScorerYear pairs a player's goal count in one year with the goals-per-match
// average of the player's national team that year.
type ScorerYear struct {
	Year         int
	Goals        int
	TeamAvgGoals float64
}

type ScorerProfile struct {
	Player          player.Player
	Country         country.Country
	TotalGoals      int
	MaxGoalsInMatch int
	FirstYear       int
	LastYear        int
	Years           []ScorerYear
}

type ScorerService struct {
	playerRepo  player.Repository
	countryRepo country.Repository
	goalRepo    goal.Repository
	matchRepo   match.Repository
}

func NewScorerService(
	playerRepo player.Repository,
	countryRepo country.Repository,
	goalRepo goal.Repository,
	matchRepo match.Repository,
) *ScorerService {
	return &ScorerService{
		playerRepo:  playerRepo,
		countryRepo: countryRepo,
		goalRepo:    goalRepo,
		matchRepo:   matchRepo,
	}
}

// GetTopScorers returns players ranked by descending total goal count,
// truncated to limit. Ties beyond the count carry no secondary ordering.
func (s *ScorerService) GetTopScorers(ctx context.Context, limit int) ([]goal.ScorerTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.GetTopScorers")
	defer span.End()

	if limit <= 0 {
		limit = defaultTopScorersLimit
	}

	totals, err := s.goalRepo.ListScorerTotals(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list scorer totals: %w", err)
	}
	return totals, nil
}

// GetProfile computes a scorer's career aggregate. The per-year team average
// re-walks every match the player's country played that year; with the
// dataset sizes involved this full scan is acceptable.
func (s *ScorerService) GetProfile(ctx context.Context, playerID int64) (ScorerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.GetProfile")
	defer span.End()

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return ScorerProfile{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return ScorerProfile{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	c, found, err := s.countryRepo.GetByID(ctx, p.CountryID)
	if err != nil {
		return ScorerProfile{}, fmt.Errorf("get player country: %w", err)
	}
	if !found {
		return ScorerProfile{}, fmt.Errorf("%w: country %d", ErrNotFound, p.CountryID)
	}

	goals, err := s.goalRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return ScorerProfile{}, fmt.Errorf("list player goals: %w", err)
	}

	teamMatches, err := s.matchRepo.ListByCountry(ctx, p.CountryID)
	if err != nil {
		return ScorerProfile{}, fmt.Errorf("list team matches: %w", err)
	}
	matchByID := make(map[int64]match.Match, len(teamMatches))
	for _, m := range teamMatches {
		matchByID[m.ID] = m
	}

	profile := ScorerProfile{Player: p, Country: c, TotalGoals: len(goals)}

	goalsByMatch := make(map[int64]int)
	goalsByYear := make(map[int]int)
	for _, g := range goals {
		goalsByMatch[g.MatchID]++

		m, ok := matchByID[g.MatchID]
		if !ok {
			// Goal linked to a match outside the team's list; resolve it
			// directly so the year bucket is still attributed.
			fetched, fetchedOK, fetchErr := s.matchRepo.GetByID(ctx, g.MatchID)
			if fetchErr != nil {
				return ScorerProfile{}, fmt.Errorf("get goal match: %w", fetchErr)
			}
			if !fetchedOK {
				continue
			}
			m = fetched
		}
		if m.Date == nil {
			continue
		}
		goalsByYear[m.Year()]++
	}

	for _, count := range goalsByMatch {
		if count > profile.MaxGoalsInMatch {
			profile.MaxGoalsInMatch = count
		}
	}

	profile.Years = make([]ScorerYear, 0, len(goalsByYear))
	for year, count := range goalsByYear {
		profile.Years = append(profile.Years, ScorerYear{
			Year:         year,
			Goals:        count,
			TeamAvgGoals: teamAvgGoals(teamMatches, p.CountryID, year),
		})
	}
	sort.Slice(profile.Years, func(i, j int) bool { return profile.Years[i].Year < profile.Years[j].Year })
	if len(profile.Years) > 0 {
		profile.FirstYear = profile.Years[0].Year
		profile.LastYear = profile.Years[len(profile.Years)-1].Year
	}

	return profile, nil
}

func teamAvgGoals(matches []match.Match, countryID int64, year int) float64 {
	var played, scored int
	for _, m := range matches {
		if m.Date == nil || m.Year() != year {
			continue
		}
		if s, _, ok := m.ScoreFor(countryID); ok {
			played++
			scored += s
		}
	}
	if played == 0 {
		return 0
	}
	return round2(float64(scored) / float64(played))
}
