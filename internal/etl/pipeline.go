package etl

import (
	"context"
	"path/filepath"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/formername"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/logging"
)

// Source file names inside the data directory.
const (
	CountriesFile   = "countries.csv"
	FormerNamesFile = "former_names.csv"
	ResultsFile     = "results.csv"
	GoalscorersFile = "goalscorers.csv"
	ShootoutsFile   = "shootouts.csv"
)

// Phase names, in load order.
const (
	PhaseCountries   = "countries"
	PhaseFormerNames = "former_names"
	PhaseMatches     = "matches"
	PhaseGoals       = "goals"
	PhaseShootouts   = "shootouts"
)

// PhaseReport is the outcome of one load phase. Err is set when the whole
// phase aborted (missing file or column, failed commit); per-row problems
// only move the Skipped counter.
type PhaseReport struct {
	Phase    string `json:"phase"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Err      error  `json:"-"`
	Error    string `json:"error,omitempty"`
}

// Pipeline loads the five CSV sources into the entity repositories, in
// strict order. Each later phase resolves foreign keys the earlier phases
// established, so the ordering is load-bearing.
type Pipeline struct {
	countries   country.Repository
	formerNames formername.Repository
	matches     match.Repository
	players     player.Repository
	goals       goal.Repository
	shootouts   shootout.Repository
	logger      *logging.Logger
}

func NewPipeline(
	countries country.Repository,
	formerNames formername.Repository,
	matches match.Repository,
	players player.Repository,
	goals goal.Repository,
	shootouts shootout.Repository,
	logger *logging.Logger,
) *Pipeline {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		countries:   countries,
		formerNames: formerNames,
		matches:     matches,
		players:     players,
		goals:       goals,
		shootouts:   shootouts,
		logger:      logger,
	}
}

// matchKey identifies a match by the triple the goal and shootout sources
// carry. Matches with unparseable dates are never keyed.
type matchKey struct {
	date   string
	homeID int64
	awayID int64
}

type playerKey struct {
	name      string
	countryID int64
}

// loadState is the in-memory view built up across phases of one run.
type loadState struct {
	resolver      *Resolver
	countryByName map[string]country.Country
	matchIDByKey  map[matchKey]int64
	playerByKey   map[playerKey]player.Player
}

// Run executes all five phases against the CSV files in dir. A failed phase
// is reported and logged but never stops the later phases; whatever rows a
// phase accepted before failing are not rolled back across phases.
func (p *Pipeline) Run(ctx context.Context, dir string) ([]PhaseReport, error) {
	st, err := p.buildState(ctx)
	if err != nil {
		return nil, err
	}

	phases := []struct {
		name string
		run  func(context.Context, *loadState, string) (int, int, error)
		file string
	}{
		{PhaseCountries, p.loadCountries, CountriesFile},
		{PhaseFormerNames, p.loadFormerNames, FormerNamesFile},
		{PhaseMatches, p.loadMatches, ResultsFile},
		{PhaseGoals, p.loadGoals, GoalscorersFile},
		{PhaseShootouts, p.loadShootouts, ShootoutsFile},
	}

	reports := make([]PhaseReport, 0, len(phases))
	for _, phase := range phases {
		inserted, skipped, phaseErr := phase.run(ctx, st, filepath.Join(dir, phase.file))
		report := PhaseReport{Phase: phase.name, Inserted: inserted, Skipped: skipped, Err: phaseErr}
		if phaseErr != nil {
			report.Error = phaseErr.Error()
			p.logger.ErrorContext(ctx, "load phase failed", "phase", phase.name, "error", phaseErr)
		} else {
			p.logger.InfoContext(ctx, "load phase complete",
				"phase", phase.name, "inserted", inserted, "skipped", skipped)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// buildState seeds the run state from already-stored rows so a re-run sees
// previous data the same way the first run saw its own inserts.
func (p *Pipeline) buildState(ctx context.Context) (*loadState, error) {
	st := &loadState{
		resolver:      NewResolver(),
		countryByName: make(map[string]country.Country),
		matchIDByKey:  make(map[matchKey]int64),
		playerByKey:   make(map[playerKey]player.Player),
	}

	countries, err := p.countries.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range countries {
		st.countryByName[c.Name] = c
	}

	formerNames, err := p.formerNames.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, fn := range formerNames {
		st.resolver.RegisterFormerName(fn.Former, fn.CurrentName)
	}

	matches, err := p.matches.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		if m.Date == nil {
			continue
		}
		key := matchKey{date: dateKey(m.Date), homeID: m.HomeTeamID, awayID: m.AwayTeamID}
		if _, seen := st.matchIDByKey[key]; !seen {
			st.matchIDByKey[key] = m.ID
		}
	}

	players, err := p.players.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, pl := range players {
		st.playerByKey[playerKey{name: pl.Name, countryID: pl.CountryID}] = pl
	}

	return st, nil
}

func (p *Pipeline) loadCountries(ctx context.Context, st *loadState, path string) (int, int, error) {
	t, err := readTable(path)
	if err != nil {
		return 0, 0, err
	}
	if err := t.require("Display_Name", "Region", "Sub-Region", "Status", "Developed", "Population", "Area"); err != nil {
		return 0, 0, err
	}

	var (
		batch   []country.Country
		pending = make(map[string]struct{})
		skipped int
	)
	for _, raw := range t.rows {
		row := parseCountryRow(t, raw)
		if row.name == "" {
			continue
		}
		if _, exists := st.countryByName[row.name]; exists {
			skipped++
			continue
		}
		if _, queued := pending[row.name]; queued {
			skipped++
			continue
		}

		batch = append(batch, country.Country{
			Name:       row.name,
			ISOCode:    row.isoCode,
			Region:     row.region,
			Continent:  row.subRegion,
			Status:     row.status,
			Developed:  row.developed,
			Population: row.population,
			AreaSqKm:   row.area,
		})
		pending[row.name] = struct{}{}
	}

	inserted, err := p.countries.InsertBatch(ctx, batch)
	if err != nil {
		return 0, skipped, err
	}
	for _, c := range inserted {
		st.countryByName[c.Name] = c
	}

	return len(inserted), skipped, nil
}

func (p *Pipeline) loadFormerNames(ctx context.Context, st *loadState, path string) (int, int, error) {
	t, err := readTable(path)
	if err != nil {
		return 0, 0, err
	}
	if err := t.require("current", "former", "start_date", "end_date"); err != nil {
		return 0, 0, err
	}

	var (
		batch   []formername.FormerName
		skipped int
	)
	for _, raw := range t.rows {
		row := parseFormerNameRow(t, raw)
		if row.current == "" || row.former == "" {
			skipped++
			continue
		}

		current, found := st.countryByName[row.current]
		if !found {
			p.logger.WarnContext(ctx, "skipped former name, current country not found",
				"former", row.former, "current", row.current)
			skipped++
			continue
		}

		st.resolver.RegisterFormerName(row.former, row.current)
		batch = append(batch, formername.FormerName{
			CountryID:   current.ID,
			CurrentName: row.current,
			Former:      row.former,
			StartDate:   row.startDate,
			EndDate:     row.endDate,
		})
	}

	inserted, err := p.formerNames.InsertBatch(ctx, batch)
	if err != nil {
		return 0, skipped, err
	}

	return len(inserted), skipped, nil
}

func (p *Pipeline) loadMatches(ctx context.Context, st *loadState, path string) (int, int, error) {
	t, err := readTable(path)
	if err != nil {
		return 0, 0, err
	}
	if err := t.require("date", "home_team", "away_team", "home_score", "away_score", "tournament", "city", "country", "neutral"); err != nil {
		return 0, 0, err
	}

	var (
		batch   []match.Match
		skipped int
	)
	for _, raw := range t.rows {
		row := parseMatchRow(t, raw)

		homeName, homeOK := st.resolver.Resolve(row.homeTeam)
		awayName, awayOK := st.resolver.Resolve(row.awayTeam)
		if !homeOK || !awayOK {
			skipped++
			continue
		}

		home, homeFound := st.countryByName[homeName]
		away, awayFound := st.countryByName[awayName]
		if !homeFound || !awayFound {
			skipped++
			continue
		}
		if !row.scoresOK {
			skipped++
			continue
		}

		m := match.Match{
			Date:       row.date,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			HomeScore:  row.homeScore,
			AwayScore:  row.awayScore,
			Tournament: row.tournament,
			City:       row.city,
			Neutral:    row.neutral,
		}
		// Host lookup is best effort and uses the raw venue name without
		// alias resolution; an unknown host never blocks the row.
		if host, found := st.countryByName[row.host]; found {
			hostID := host.ID
			m.HostCountryID = &hostID
		}
		batch = append(batch, m)
	}

	// Deliberately no duplicate detection: re-running this phase appends
	// the same fixtures again.
	inserted, err := p.matches.InsertBatch(ctx, batch)
	if err != nil {
		return 0, skipped, err
	}
	for _, m := range inserted {
		if m.Date == nil {
			continue
		}
		key := matchKey{date: dateKey(m.Date), homeID: m.HomeTeamID, awayID: m.AwayTeamID}
		if _, seen := st.matchIDByKey[key]; !seen {
			st.matchIDByKey[key] = m.ID
		}
	}

	return len(inserted), skipped, nil
}

func (p *Pipeline) loadGoals(ctx context.Context, st *loadState, path string) (int, int, error) {
	t, err := readTable(path)
	if err != nil {
		return 0, 0, err
	}
	if err := t.require("date", "home_team", "away_team", "team", "scorer", "own_goal", "penalty"); err != nil {
		return 0, 0, err
	}

	type pendingGoal struct {
		matchID int64
		teamID  int64
		player  playerKey
		minute  *int
		ownGoal bool
		penalty bool
	}

	var (
		pendingGoals []pendingGoal
		newPlayers   []player.Player
		queued       = make(map[playerKey]struct{})
		skipped      int
	)
	for _, raw := range t.rows {
		row := parseGoalRow(t, raw)
		if row.date == nil {
			skipped++
			continue
		}

		homeName, _ := st.resolver.Resolve(row.homeTeam)
		awayName, _ := st.resolver.Resolve(row.awayTeam)
		teamName, _ := st.resolver.Resolve(row.team)

		home, homeFound := st.countryByName[homeName]
		away, awayFound := st.countryByName[awayName]
		team, teamFound := st.countryByName[teamName]
		if !homeFound || !awayFound || !teamFound {
			skipped++
			continue
		}

		matchID, found := st.matchIDByKey[matchKey{date: dateKey(row.date), homeID: home.ID, awayID: away.ID}]
		if !found {
			skipped++
			continue
		}
		if row.scorer == "" {
			skipped++
			continue
		}

		key := playerKey{name: row.scorer, countryID: team.ID}
		if _, known := st.playerByKey[key]; !known {
			if _, inBatch := queued[key]; !inBatch {
				newPlayers = append(newPlayers, player.Player{Name: row.scorer, CountryID: team.ID})
				queued[key] = struct{}{}
			}
		}

		pendingGoals = append(pendingGoals, pendingGoal{
			matchID: matchID,
			teamID:  team.ID,
			player:  key,
			minute:  row.minute,
			ownGoal: row.ownGoal,
			penalty: row.penalty,
		})
	}

	insertedPlayers, err := p.players.InsertBatch(ctx, newPlayers)
	if err != nil {
		return 0, skipped, err
	}
	for _, pl := range insertedPlayers {
		st.playerByKey[playerKey{name: pl.Name, countryID: pl.CountryID}] = pl
	}

	batch := make([]goal.Goal, 0, len(pendingGoals))
	for _, g := range pendingGoals {
		pl, known := st.playerByKey[g.player]
		if !known {
			skipped++
			continue
		}
		batch = append(batch, goal.Goal{
			MatchID:  g.matchID,
			PlayerID: pl.ID,
			TeamID:   g.teamID,
			Minute:   g.minute,
			OwnGoal:  g.ownGoal,
			Penalty:  g.penalty,
		})
	}

	inserted, err := p.goals.InsertBatch(ctx, batch)
	if err != nil {
		return 0, skipped, err
	}

	return len(inserted), skipped, nil
}

func (p *Pipeline) loadShootouts(ctx context.Context, st *loadState, path string) (int, int, error) {
	t, err := readTable(path)
	if err != nil {
		return 0, 0, err
	}
	if err := t.require("date", "home_team", "away_team", "winner", "first_shooter"); err != nil {
		return 0, 0, err
	}

	var (
		batch   []shootout.Shootout
		skipped int
	)
	for _, raw := range t.rows {
		row := parseShootoutRow(t, raw)
		if row.date == nil {
			skipped++
			continue
		}

		homeName, _ := st.resolver.Resolve(row.homeTeam)
		awayName, _ := st.resolver.Resolve(row.awayTeam)
		winnerName, _ := st.resolver.Resolve(row.winner)

		home, homeFound := st.countryByName[homeName]
		away, awayFound := st.countryByName[awayName]
		winner, winnerFound := st.countryByName[winnerName]
		if !homeFound || !awayFound || !winnerFound {
			skipped++
			continue
		}

		matchID, found := st.matchIDByKey[matchKey{date: dateKey(row.date), homeID: home.ID, awayID: away.ID}]
		if !found {
			skipped++
			continue
		}

		s := shootout.Shootout{
			MatchID:    matchID,
			Date:       row.date,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			WinnerID:   winner.ID,
		}
		// First shooter is optional; unresolved names leave it unset.
		if firstName, ok := st.resolver.Resolve(row.firstShooter); ok {
			if first, firstFound := st.countryByName[firstName]; firstFound {
				firstID := first.ID
				s.FirstShooterID = &firstID
			}
		}
		batch = append(batch, s)
	}

	inserted, err := p.shootouts.InsertBatch(ctx, batch)
	if err != nil {
		return 0, skipped, err
	}

	return len(inserted), skipped, nil
}

func dateKey(ts *time.Time) string {
	return ts.Format("2006-01-02")
}
