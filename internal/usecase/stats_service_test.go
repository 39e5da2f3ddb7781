package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/infrastructure/repository/memory"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/cache"
)

func newStatsFixture(t *testing.T, store *cache.Store) (*StatsService, *memory.MatchRepository) {
	t.Helper()
	ctx := context.Background()

	countryRepo := memory.NewCountryRepository()
	matchRepo := memory.NewMatchRepository()

	popBrazil, popIran := int64(212000000), int64(83000000)
	_, err := countryRepo.InsertBatch(ctx, []country.Country{
		{Name: "Brazil", Population: &popBrazil},
		{Name: "Iran", Population: &popIran},
		{Name: "Atlantis"},
	})
	if err != nil {
		t.Fatalf("seed countries: %v", err)
	}

	_, err = matchRepo.InsertBatch(ctx, []match.Match{
		{Date: dateOn(1994, 7, 17), HomeTeamID: 1, AwayTeamID: 2, HomeScore: 3, AwayScore: 0},
		{Date: dateOn(1994, 7, 20), HomeTeamID: 2, AwayTeamID: 1, HomeScore: 2, AwayScore: 2},
		{Date: dateOn(1998, 7, 12), HomeTeamID: 1, AwayTeamID: 3, HomeScore: 4, AwayScore: 1},
	})
	if err != nil {
		t.Fatalf("seed matches: %v", err)
	}

	return NewStatsService(countryRepo, matchRepo, store), matchRepo
}

func TestGlobalStats(t *testing.T) {
	t.Parallel()

	svc, _ := newStatsFixture(t, nil)
	stats, err := svc.GetGlobalStats(context.Background())
	if err != nil {
		t.Fatalf("GetGlobalStats error = %v", err)
	}

	if len(stats.TopWins) != 1 || stats.TopWins[0].Name != "Brazil" || stats.TopWins[0].Value != 2 {
		t.Fatalf("top wins = %+v", stats.TopWins)
	}

	// Goals: Brazil 3+2+4=9, Iran 0+2=2, Atlantis 1.
	if len(stats.TopGoals) != 3 || stats.TopGoals[0].Value != 9 || stats.TopGoals[2].Name != "Atlantis" {
		t.Fatalf("top goals = %+v", stats.TopGoals)
	}

	// Atlantis has no population and stays off the scatter.
	if len(stats.PopulationWins) != 2 {
		t.Fatalf("population points = %+v", stats.PopulationWins)
	}
	for _, pt := range stats.PopulationWins {
		if pt.Name == "Atlantis" {
			t.Fatalf("country without population on scatter: %+v", pt)
		}
	}
}

func TestGlobalStatsCaching(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(time.Minute)
	svc, matchRepo := newStatsFixture(t, store)
	ctx := context.Background()

	before, err := svc.GetGlobalStats(ctx)
	if err != nil {
		t.Fatalf("GetGlobalStats error = %v", err)
	}

	// New matches are invisible until the cache entry is dropped.
	if _, err := matchRepo.InsertBatch(ctx, []match.Match{
		{Date: dateOn(2002, 6, 30), HomeTeamID: 2, AwayTeamID: 1, HomeScore: 1, AwayScore: 0},
	}); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	cached, err := svc.GetGlobalStats(ctx)
	if err != nil {
		t.Fatalf("GetGlobalStats error = %v", err)
	}
	if cached.TopWins[0].Value != before.TopWins[0].Value {
		t.Fatal("cache was bypassed")
	}

	svc.InvalidateGlobalStats(ctx)
	fresh, err := svc.GetGlobalStats(ctx)
	if err != nil {
		t.Fatalf("GetGlobalStats error = %v", err)
	}
	var iranWins int
	for _, row := range fresh.TopWins {
		if row.Name == "Iran" {
			iranWins = row.Value
		}
	}
	if iranWins != 1 {
		t.Fatalf("Iran wins after invalidation = %d, want 1", iranWins)
	}
}

func TestYearlyStats(t *testing.T) {
	t.Parallel()

	svc, _ := newStatsFixture(t, nil)
	stats, err := svc.GetYearlyStats(context.Background(), 1994)
	if err != nil {
		t.Fatalf("GetYearlyStats error = %v", err)
	}

	if stats.TotalMatches != 2 || len(stats.Matches) != 2 {
		t.Fatalf("1994 matches = %d/%d, want 2", stats.TotalMatches, len(stats.Matches))
	}
	// 1994 goals: Brazil 3+2=5, Iran 2.
	if len(stats.TopTeams) != 2 || stats.TopTeams[0].Name != "Brazil" || stats.TopTeams[0].Value != 5 {
		t.Fatalf("top teams = %+v", stats.TopTeams)
	}

	empty, err := svc.GetYearlyStats(context.Background(), 1900)
	if err != nil {
		t.Fatalf("GetYearlyStats(1900) error = %v", err)
	}
	if empty.TotalMatches != 0 || len(empty.TopTeams) != 0 {
		t.Fatalf("1900 stats = %+v", empty)
	}
}
