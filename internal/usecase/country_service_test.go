package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/infrastructure/repository/memory"
)

func dateOn(year int, month time.Month, day int) *time.Time {
	ts := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &ts
}

type countryFixture struct {
	svc       *CountryService
	countries map[string]country.Country
}

func newCountryFixture(t *testing.T) *countryFixture {
	t.Helper()
	ctx := context.Background()

	countryRepo := memory.NewCountryRepository()
	matchRepo := memory.NewMatchRepository()

	pop := int64(83000000)
	inserted, err := countryRepo.InsertBatch(ctx, []country.Country{
		{Name: "Iran", Population: &pop},
		{Name: "United Kingdom"},
		{Name: "Germany"},
	})
	if err != nil {
		t.Fatalf("seed countries: %v", err)
	}
	byName := make(map[string]country.Country)
	for _, c := range inserted {
		byName[c.Name] = c
	}

	iran := byName["Iran"].ID
	uk := byName["United Kingdom"].ID
	germany := byName["Germany"].ID

	_, err = matchRepo.InsertBatch(ctx, []match.Match{
		{Date: dateOn(1950, 1, 1), HomeTeamID: iran, AwayTeamID: uk, HomeScore: 2, AwayScore: 1},
		{Date: dateOn(1950, 6, 1), HomeTeamID: uk, AwayTeamID: iran, HomeScore: 3, AwayScore: 3},
		{Date: dateOn(1972, 6, 1), HomeTeamID: germany, AwayTeamID: iran, HomeScore: 3, AwayScore: 0},
		{Date: dateOn(1972, 9, 1), HomeTeamID: iran, AwayTeamID: germany, HomeScore: 1, AwayScore: 0},
		// Undated match; never part of a profile.
		{HomeTeamID: iran, AwayTeamID: uk, HomeScore: 5, AwayScore: 0},
	})
	if err != nil {
		t.Fatalf("seed matches: %v", err)
	}

	return &countryFixture{
		svc:       NewCountryService(countryRepo, memory.NewFormerNameRepository(), matchRepo),
		countries: byName,
	}
}

func TestCountryProfileInvariants(t *testing.T) {
	t.Parallel()

	fx := newCountryFixture(t)
	ctx := context.Background()
	iranID := fx.countries["Iran"].ID

	from1950, to1950, from1972 := 1950, 1950, 1972
	ranges := []struct {
		name     string
		from, to *int
	}{
		{"all years", nil, nil},
		{"1950 only", &from1950, &to1950},
		{"from 1972", &from1972, nil},
		{"until 1950", nil, &to1950},
	}

	for _, tc := range ranges {
		profile, err := fx.svc.GetProfile(ctx, iranID, tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s: GetProfile error = %v", tc.name, err)
		}
		if got := profile.Wins + profile.Losses + profile.Draws; got != profile.Played {
			t.Fatalf("%s: w+l+d = %d, played = %d", tc.name, got, profile.Played)
		}
		if got := 3*profile.Wins + profile.Draws; got != profile.Points {
			t.Fatalf("%s: points = %d, want %d", tc.name, profile.Points, got)
		}
		for _, bucket := range profile.Years {
			if bucket.Wins+bucket.Losses+bucket.Draws != bucket.Played {
				t.Fatalf("%s: year %d bucket inconsistent: %+v", tc.name, bucket.Year, bucket)
			}
			if bucket.Points != 3*bucket.Wins+bucket.Draws {
				t.Fatalf("%s: year %d points = %d", tc.name, bucket.Year, bucket.Points)
			}
		}
	}
}

func TestCountryProfileNumbers(t *testing.T) {
	t.Parallel()

	fx := newCountryFixture(t)
	ctx := context.Background()

	profile, err := fx.svc.GetProfile(ctx, fx.countries["Iran"].ID, nil, nil)
	if err != nil {
		t.Fatalf("GetProfile error = %v", err)
	}

	// Iran: won 2-1 and 1-0, drew 3-3, lost 0-3. The undated 5-0 match is
	// excluded.
	if profile.Played != 4 || profile.Wins != 2 || profile.Draws != 1 || profile.Losses != 1 {
		t.Fatalf("profile = %+v", profile)
	}
	if profile.GoalsScored != 6 || profile.GoalsConceded != 7 {
		t.Fatalf("goals = %d/%d, want 6/7", profile.GoalsScored, profile.GoalsConceded)
	}
	if profile.Points != 7 {
		t.Fatalf("points = %d, want 7", profile.Points)
	}
	if profile.AvgGoals != 1.5 {
		t.Fatalf("avg goals = %v, want 1.5", profile.AvgGoals)
	}
	if profile.FirstYear != 1950 || profile.LastYear != 1972 {
		t.Fatalf("active years = %d..%d, want 1950..1972", profile.FirstYear, profile.LastYear)
	}
	if len(profile.Years) != 2 {
		t.Fatalf("year buckets = %d, want 2", len(profile.Years))
	}
}

func TestCountryProfileYearFilter(t *testing.T) {
	t.Parallel()

	fx := newCountryFixture(t)
	ctx := context.Background()

	from, to := 1972, 1972
	profile, err := fx.svc.GetProfile(ctx, fx.countries["Iran"].ID, &from, &to)
	if err != nil {
		t.Fatalf("GetProfile error = %v", err)
	}
	if profile.Played != 2 || profile.Wins != 1 || profile.Losses != 1 {
		t.Fatalf("1972 profile = %+v", profile)
	}

	badFrom, badTo := 1980, 1950
	if _, err := fx.svc.GetProfile(ctx, fx.countries["Iran"].ID, &badFrom, &badTo); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inverted range error = %v, want ErrInvalidInput", err)
	}
}

func TestCountryGetNotFound(t *testing.T) {
	t.Parallel()

	fx := newCountryFixture(t)

	if _, err := fx.svc.Get(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(9999) error = %v, want ErrNotFound", err)
	}
	if _, err := fx.svc.GetProfile(context.Background(), 9999, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetProfile(9999) error = %v, want ErrNotFound", err)
	}
}
