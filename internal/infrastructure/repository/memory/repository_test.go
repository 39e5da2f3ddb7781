package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
)

func TestCountryRepository_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCountryRepository()

	inserted, err := repo.InsertBatch(ctx, []country.Country{
		{Name: "Brazil"},
		{Name: "Italy"},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 2)
	require.Equal(t, int64(1), inserted[0].ID)
	require.Equal(t, int64(2), inserted[1].ID)

	got, found, err := repo.GetByName(ctx, "Italy")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, inserted[1].ID, got.ID)

	_, found, err = repo.GetByID(ctx, 99)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMatchRepository_ListByCountryAndYear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMatchRepository()

	date1950 := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	date1972 := time.Date(1972, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.InsertBatch(ctx, []match.Match{
		{Date: &date1950, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 1},
		{Date: &date1972, HomeTeamID: 3, AwayTeamID: 1, HomeScore: 3, AwayScore: 3},
		{Date: &date1972, HomeTeamID: 2, AwayTeamID: 3, HomeScore: 0, AwayScore: 0},
	})
	require.NoError(t, err)

	involving, err := repo.ListByCountry(ctx, 1)
	require.NoError(t, err)
	require.Len(t, involving, 2)

	in1972, err := repo.ListByYear(ctx, 1972)
	require.NoError(t, err)
	require.Len(t, in1972, 2)

	in1900, err := repo.ListByYear(ctx, 1900)
	require.NoError(t, err)
	require.Empty(t, in1900)
}

func TestGoalRepository_ListScorerTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	countries := NewCountryRepository()
	players := NewPlayerRepository()
	goals := NewGoalRepository(players, countries)

	insertedCountries, err := countries.InsertBatch(ctx, []country.Country{{Name: "Iran"}, {Name: "Brazil"}})
	require.NoError(t, err)

	insertedPlayers, err := players.InsertBatch(ctx, []player.Player{
		{Name: "Ali Daei", CountryID: insertedCountries[0].ID},
		{Name: "Romario", CountryID: insertedCountries[1].ID},
	})
	require.NoError(t, err)

	batch := []goal.Goal{
		{MatchID: 1, PlayerID: insertedPlayers[0].ID, TeamID: insertedCountries[0].ID},
		{MatchID: 2, PlayerID: insertedPlayers[0].ID, TeamID: insertedCountries[0].ID},
		{MatchID: 2, PlayerID: insertedPlayers[1].ID, TeamID: insertedCountries[1].ID},
	}
	_, err = goals.InsertBatch(ctx, batch)
	require.NoError(t, err)

	totals, err := goals.ListScorerTotals(ctx, 10)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	require.Equal(t, "Ali Daei", totals[0].PlayerName)
	require.Equal(t, "Iran", totals[0].CountryName)
	require.Equal(t, 2, totals[0].TotalGoals)

	truncated, err := goals.ListScorerTotals(ctx, 1)
	require.NoError(t, err)
	require.Len(t, truncated, 1)
}

func TestShootoutRepository_GetByMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewShootoutRepository()

	_, err := repo.InsertBatch(ctx, []shootout.Shootout{
		{MatchID: 5, HomeTeamID: 1, AwayTeamID: 2, WinnerID: 2},
	})
	require.NoError(t, err)

	got, found, err := repo.GetByMatch(ctx, 5)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(2), got.WinnerID)

	_, found, err = repo.GetByMatch(ctx, 6)
	require.NoError(t, err)
	require.False(t, found)
}
