package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/cache"
)

const (
	globalStatsCacheKey = "stats:global"
	leaderboardSize     = 10
	yearlyTopTeams      = 5
)

// CountryStat is one leaderboard row.
type CountryStat struct {
	CountryID int64
	Name      string
	Value     int
}

// PopulationPoint is one scatter point of population against total wins.
// Only countries with a known population appear.
type PopulationPoint struct {
	CountryID  int64
	Name       string
	Population int64
	Wins       int
}

type GlobalStats struct {
	TopWins        []CountryStat
	TopGoals       []CountryStat
	PopulationWins []PopulationPoint
}

type YearlyStats struct {
	Year         int
	TotalMatches int
	TopTeams     []CountryStat
	Matches      []match.Match
}

type StatsService struct {
	countryRepo country.Repository
	matchRepo   match.Repository
	cache       *cache.Store
}

// NewStatsService builds the aggregate service. store may be nil to disable
// caching of the global leaderboard.
func NewStatsService(countryRepo country.Repository, matchRepo match.Repository, store *cache.Store) *StatsService {
	return &StatsService{
		countryRepo: countryRepo,
		matchRepo:   matchRepo,
		cache:       store,
	}
}

// GetGlobalStats computes the wins and goals leaderboards and the
// population-vs-wins scatter. The store never changes after ingestion, so the
// result is cached for the configured TTL.
func (s *StatsService) GetGlobalStats(ctx context.Context) (GlobalStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GetGlobalStats")
	defer span.End()

	if s.cache == nil {
		return s.computeGlobalStats(ctx)
	}

	value, err := s.cache.GetOrLoad(ctx, globalStatsCacheKey, func(ctx context.Context) (any, error) {
		return s.computeGlobalStats(ctx)
	})
	if err != nil {
		return GlobalStats{}, err
	}
	stats, ok := value.(GlobalStats)
	if !ok {
		return s.computeGlobalStats(ctx)
	}
	return stats, nil
}

func (s *StatsService) computeGlobalStats(ctx context.Context) (GlobalStats, error) {
	var (
		countries []country.Country
		matches   []match.Match
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := s.countryRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list countries: %w", err)
		}
		countries = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		matches = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return GlobalStats{}, err
	}

	wins := make(map[int64]int)
	goals := make(map[int64]int)
	for _, m := range matches {
		goals[m.HomeTeamID] += m.HomeScore
		goals[m.AwayTeamID] += m.AwayScore
		switch {
		case m.HomeScore > m.AwayScore:
			wins[m.HomeTeamID]++
		case m.AwayScore > m.HomeScore:
			wins[m.AwayTeamID]++
		}
	}

	stats := GlobalStats{
		TopWins:  topCountryStats(countries, wins, leaderboardSize),
		TopGoals: topCountryStats(countries, goals, leaderboardSize),
	}
	for _, c := range countries {
		if c.Population == nil {
			continue
		}
		stats.PopulationWins = append(stats.PopulationWins, PopulationPoint{
			CountryID:  c.ID,
			Name:       c.Name,
			Population: *c.Population,
			Wins:       wins[c.ID],
		})
	}
	sort.Slice(stats.PopulationWins, func(i, j int) bool {
		return stats.PopulationWins[i].Population > stats.PopulationWins[j].Population
	})

	return stats, nil
}

// GetYearlyStats digests one calendar year: total matches, the five teams
// that scored the most that year, and the full match list.
func (s *StatsService) GetYearlyStats(ctx context.Context, year int) (YearlyStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GetYearlyStats")
	defer span.End()

	if year <= 0 {
		return YearlyStats{}, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByYear(ctx, year)
	if err != nil {
		return YearlyStats{}, fmt.Errorf("list matches by year: %w", err)
	}
	countries, err := s.countryRepo.ListAll(ctx)
	if err != nil {
		return YearlyStats{}, fmt.Errorf("list countries: %w", err)
	}

	goals := make(map[int64]int)
	for _, m := range matches {
		goals[m.HomeTeamID] += m.HomeScore
		goals[m.AwayTeamID] += m.AwayScore
	}
	sortMatchesByDate(matches)

	return YearlyStats{
		Year:         year,
		TotalMatches: len(matches),
		TopTeams:     topCountryStats(countries, goals, yearlyTopTeams),
		Matches:      matches,
	}, nil
}

// InvalidateGlobalStats drops the cached leaderboard, used after a re-run of
// the ingestion pipeline.
func (s *StatsService) InvalidateGlobalStats(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, globalStatsCacheKey)
	}
}

func topCountryStats(countries []country.Country, values map[int64]int, limit int) []CountryStat {
	nameByID := make(map[int64]string, len(countries))
	for _, c := range countries {
		nameByID[c.ID] = c.Name
	}

	out := make([]CountryStat, 0, len(values))
	for id, value := range values {
		if value == 0 {
			continue
		}
		out = append(out, CountryStat{CountryID: id, Name: nameByID[id], Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
