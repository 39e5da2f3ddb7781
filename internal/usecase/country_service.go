package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/formername"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
)

// YearBucket is one year's slice of a country profile.
type YearBucket struct {
	Year          int
	Played        int
	Wins          int
	Losses        int
	Draws         int
	GoalsScored   int
	GoalsConceded int
	Points        int
	AvgGoals      float64
}

// CountryProfile aggregates a country's historical results, optionally
// restricted to a year range.
type CountryProfile struct {
	Country       country.Country
	FormerNames   []formername.FormerName
	Played        int
	Wins          int
	Losses        int
	Draws         int
	GoalsScored   int
	GoalsConceded int
	Points        int
	AvgGoals      float64
	FirstYear     int
	LastYear      int
	Years         []YearBucket
}

type CountryService struct {
	countryRepo    country.Repository
	formerNameRepo formername.Repository
	matchRepo      match.Repository
}

func NewCountryService(
	countryRepo country.Repository,
	formerNameRepo formername.Repository,
	matchRepo match.Repository,
) *CountryService {
	return &CountryService{
		countryRepo:    countryRepo,
		formerNameRepo: formerNameRepo,
		matchRepo:      matchRepo,
	}
}

func (s *CountryService) List(ctx context.Context) ([]country.Country, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CountryService.List")
	defer span.End()

	items, err := s.countryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *CountryService) Get(ctx context.Context, id int64) (country.Country, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CountryService.Get")
	defer span.End()

	c, found, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return country.Country{}, fmt.Errorf("get country: %w", err)
	}
	if !found {
		return country.Country{}, fmt.Errorf("%w: country %d", ErrNotFound, id)
	}
	return c, nil
}

// ListMatches returns every stored match the country played in.
func (s *CountryService) ListMatches(ctx context.Context, id int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CountryService.ListMatches")
	defer span.End()

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByCountry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list country matches: %w", err)
	}
	sortMatchesByDate(matches)
	return matches, nil
}

// GetProfile computes the win/loss/draw aggregate for one country. Wins need
// a strictly greater score; equal scores are draws for both sides. Points are
// 3 per win and 1 per draw. Matches whose date failed to parse carry no year
// and are left out of the profile.
func (s *CountryService) GetProfile(ctx context.Context, id int64, fromYear, toYear *int) (CountryProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CountryService.GetProfile")
	defer span.End()

	if fromYear != nil && toYear != nil && *fromYear > *toYear {
		return CountryProfile{}, fmt.Errorf("%w: from_year after to_year", ErrInvalidInput)
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return CountryProfile{}, err
	}

	formerNames, err := s.formerNameRepo.ListByCountry(ctx, id)
	if err != nil {
		return CountryProfile{}, fmt.Errorf("list former names: %w", err)
	}

	matches, err := s.matchRepo.ListByCountry(ctx, id)
	if err != nil {
		return CountryProfile{}, fmt.Errorf("list country matches: %w", err)
	}

	profile := CountryProfile{Country: c, FormerNames: formerNames}
	buckets := make(map[int]*YearBucket)
	for _, m := range matches {
		if m.Date == nil {
			continue
		}
		year := m.Year()
		if fromYear != nil && year < *fromYear {
			continue
		}
		if toYear != nil && year > *toYear {
			continue
		}

		scored, conceded, played := m.ScoreFor(id)
		if !played {
			continue
		}

		bucket := buckets[year]
		if bucket == nil {
			bucket = &YearBucket{Year: year}
			buckets[year] = bucket
		}

		profile.Played++
		profile.GoalsScored += scored
		profile.GoalsConceded += conceded
		bucket.Played++
		bucket.GoalsScored += scored
		bucket.GoalsConceded += conceded

		switch {
		case scored > conceded:
			profile.Wins++
			bucket.Wins++
		case scored < conceded:
			profile.Losses++
			bucket.Losses++
		default:
			profile.Draws++
			bucket.Draws++
		}
	}

	profile.Points = 3*profile.Wins + profile.Draws
	if profile.Played > 0 {
		profile.AvgGoals = round2(float64(profile.GoalsScored) / float64(profile.Played))
	}

	profile.Years = make([]YearBucket, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Points = 3*bucket.Wins + bucket.Draws
		if bucket.Played > 0 {
			bucket.AvgGoals = round2(float64(bucket.GoalsScored) / float64(bucket.Played))
		}
		profile.Years = append(profile.Years, *bucket)
	}
	sort.Slice(profile.Years, func(i, j int) bool { return profile.Years[i].Year < profile.Years[j].Year })
	if len(profile.Years) > 0 {
		profile.FirstYear = profile.Years[0].Year
		profile.LastYear = profile.Years[len(profile.Years)-1].Year
	}

	return profile, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortMatchesByDate(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].Date, matches[j].Date
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
}
