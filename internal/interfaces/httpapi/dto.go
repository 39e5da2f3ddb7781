package httpapi

import (
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/formername"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
	"github.com/panagiotisMouz/Football-Stats/internal/usecase"
)

const wireDateLayout = "2006-01-02"

type countryDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ISOCode    string `json:"isoCode,omitempty"`
	Continent  string `json:"continent,omitempty"`
	Region     string `json:"region,omitempty"`
	Status     string `json:"status,omitempty"`
	Developed  string `json:"developed,omitempty"`
	Population *int64 `json:"population,omitempty"`
	AreaSqKm   *int64 `json:"areaSqKm,omitempty"`
}

type formerNameDTO struct {
	ID          int64   `json:"id"`
	CountryID   int64   `json:"countryId"`
	CurrentName string  `json:"currentName"`
	FormerName  string  `json:"formerName"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

type matchDTO struct {
	ID            int64   `json:"id"`
	Date          *string `json:"date"`
	HomeTeamID    int64   `json:"homeTeamId"`
	AwayTeamID    int64   `json:"awayTeamId"`
	HomeScore     int     `json:"homeScore"`
	AwayScore     int     `json:"awayScore"`
	Tournament    string  `json:"tournament,omitempty"`
	City          string  `json:"city,omitempty"`
	HostCountryID *int64  `json:"hostCountryId,omitempty"`
	Neutral       bool    `json:"neutral"`
}

type goalDTO struct {
	ID       int64 `json:"id"`
	MatchID  int64 `json:"matchId"`
	PlayerID int64 `json:"playerId"`
	TeamID   int64 `json:"teamId"`
	Minute   *int  `json:"minute,omitempty"`
	OwnGoal  bool  `json:"ownGoal"`
	Penalty  bool  `json:"penalty"`
}

type shootoutDTO struct {
	ID             int64   `json:"id"`
	MatchID        int64   `json:"matchId"`
	Date           *string `json:"date,omitempty"`
	HomeTeamID     int64   `json:"homeTeamId"`
	AwayTeamID     int64   `json:"awayTeamId"`
	WinnerID       int64   `json:"winnerId"`
	FirstShooterID *int64  `json:"firstShooterId,omitempty"`
}

type playerDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"countryId"`
}

type matchDetailDTO struct {
	Match    matchDTO     `json:"match"`
	Goals    []goalDTO    `json:"goals"`
	Shootout *shootoutDTO `json:"shootout,omitempty"`
}

type yearBucketDTO struct {
	Year          int     `json:"year"`
	Played        int     `json:"played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Draws         int     `json:"draws"`
	GoalsScored   int     `json:"goalsScored"`
	GoalsConceded int     `json:"goalsConceded"`
	Points        int     `json:"points"`
	AvgGoals      float64 `json:"avgGoals"`
}

type countryProfileDTO struct {
	Country       countryDTO      `json:"country"`
	FormerNames   []formerNameDTO `json:"formerNames"`
	Played        int             `json:"played"`
	Wins          int             `json:"wins"`
	Losses        int             `json:"losses"`
	Draws         int             `json:"draws"`
	GoalsScored   int             `json:"goalsScored"`
	GoalsConceded int             `json:"goalsConceded"`
	Points        int             `json:"points"`
	AvgGoals      float64         `json:"avgGoals"`
	FirstYear     int             `json:"firstYear"`
	LastYear      int             `json:"lastYear"`
	Years         []yearBucketDTO `json:"years"`
}

type scorerTotalDTO struct {
	PlayerID    int64  `json:"playerId"`
	PlayerName  string `json:"playerName"`
	CountryName string `json:"countryName"`
	TotalGoals  int    `json:"totalGoals"`
}

type scorerYearDTO struct {
	Year         int     `json:"year"`
	Goals        int     `json:"goals"`
	TeamAvgGoals float64 `json:"teamAvgGoals"`
}

type scorerProfileDTO struct {
	Player          playerDTO       `json:"player"`
	Country         countryDTO      `json:"country"`
	TotalGoals      int             `json:"totalGoals"`
	MaxGoalsInMatch int             `json:"maxGoalsInMatch"`
	FirstYear       int             `json:"firstYear"`
	LastYear        int             `json:"lastYear"`
	Years           []scorerYearDTO `json:"years"`
}

type countryStatDTO struct {
	CountryID int64  `json:"countryId"`
	Name      string `json:"name"`
	Value     int    `json:"value"`
}

type populationPointDTO struct {
	CountryID  int64  `json:"countryId"`
	Name       string `json:"name"`
	Population int64  `json:"population"`
	Wins       int    `json:"wins"`
}

type globalStatsDTO struct {
	TopWins        []countryStatDTO     `json:"topWins"`
	TopGoals       []countryStatDTO     `json:"topGoals"`
	PopulationWins []populationPointDTO `json:"populationWins"`
}

type yearlyStatsDTO struct {
	Year         int              `json:"year"`
	TotalMatches int              `json:"totalMatches"`
	TopTeams     []countryStatDTO `json:"topTeams"`
	Matches      []matchDTO       `json:"matches"`
}

type loginRequestDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponseDTO struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresAt   string `json:"expiresAt"`
}

func formatWireDate(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	out := ts.Format(wireDateLayout)
	return &out
}

func countryToDTO(c country.Country) countryDTO {
	return countryDTO{
		ID:         c.ID,
		Name:       c.Name,
		ISOCode:    c.ISOCode,
		Continent:  c.Continent,
		Region:     c.Region,
		Status:     c.Status,
		Developed:  c.Developed,
		Population: c.Population,
		AreaSqKm:   c.AreaSqKm,
	}
}

func formerNameToDTO(f formername.FormerName) formerNameDTO {
	return formerNameDTO{
		ID:          f.ID,
		CountryID:   f.CountryID,
		CurrentName: f.CurrentName,
		FormerName:  f.Former,
		StartDate:   formatWireDate(f.StartDate),
		EndDate:     formatWireDate(f.EndDate),
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		Date:          formatWireDate(m.Date),
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Tournament:    m.Tournament,
		City:          m.City,
		HostCountryID: m.HostCountryID,
		Neutral:       m.Neutral,
	}
}

func matchesToDTOs(matches []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToDTO(m))
	}
	return out
}

func goalToDTO(g goal.Goal) goalDTO {
	return goalDTO{
		ID:       g.ID,
		MatchID:  g.MatchID,
		PlayerID: g.PlayerID,
		TeamID:   g.TeamID,
		Minute:   g.Minute,
		OwnGoal:  g.OwnGoal,
		Penalty:  g.Penalty,
	}
}

func shootoutToDTO(s shootout.Shootout) shootoutDTO {
	return shootoutDTO{
		ID:             s.ID,
		MatchID:        s.MatchID,
		Date:           formatWireDate(s.Date),
		HomeTeamID:     s.HomeTeamID,
		AwayTeamID:     s.AwayTeamID,
		WinnerID:       s.WinnerID,
		FirstShooterID: s.FirstShooterID,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{ID: p.ID, Name: p.Name, CountryID: p.CountryID}
}

func matchDetailToDTO(detail usecase.MatchDetail) matchDetailDTO {
	out := matchDetailDTO{
		Match: matchToDTO(detail.Match),
		Goals: make([]goalDTO, 0, len(detail.Goals)),
	}
	for _, g := range detail.Goals {
		out.Goals = append(out.Goals, goalToDTO(g))
	}
	if detail.Shootout != nil {
		so := shootoutToDTO(*detail.Shootout)
		out.Shootout = &so
	}
	return out
}

func countryProfileToDTO(profile usecase.CountryProfile) countryProfileDTO {
	out := countryProfileDTO{
		Country:       countryToDTO(profile.Country),
		FormerNames:   make([]formerNameDTO, 0, len(profile.FormerNames)),
		Played:        profile.Played,
		Wins:          profile.Wins,
		Losses:        profile.Losses,
		Draws:         profile.Draws,
		GoalsScored:   profile.GoalsScored,
		GoalsConceded: profile.GoalsConceded,
		Points:        profile.Points,
		AvgGoals:      profile.AvgGoals,
		FirstYear:     profile.FirstYear,
		LastYear:      profile.LastYear,
		Years:         make([]yearBucketDTO, 0, len(profile.Years)),
	}
	for _, f := range profile.FormerNames {
		out.FormerNames = append(out.FormerNames, formerNameToDTO(f))
	}
	for _, y := range profile.Years {
		out.Years = append(out.Years, yearBucketDTO(y))
	}
	return out
}

func scorerProfileToDTO(profile usecase.ScorerProfile) scorerProfileDTO {
	out := scorerProfileDTO{
		Player:          playerToDTO(profile.Player),
		Country:         countryToDTO(profile.Country),
		TotalGoals:      profile.TotalGoals,
		MaxGoalsInMatch: profile.MaxGoalsInMatch,
		FirstYear:       profile.FirstYear,
		LastYear:        profile.LastYear,
		Years:           make([]scorerYearDTO, 0, len(profile.Years)),
	}
	for _, y := range profile.Years {
		out.Years = append(out.Years, scorerYearDTO(y))
	}
	return out
}

func countryStatsToDTOs(stats []usecase.CountryStat) []countryStatDTO {
	out := make([]countryStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, countryStatDTO(s))
	}
	return out
}

func globalStatsToDTO(stats usecase.GlobalStats) globalStatsDTO {
	out := globalStatsDTO{
		TopWins:        countryStatsToDTOs(stats.TopWins),
		TopGoals:       countryStatsToDTOs(stats.TopGoals),
		PopulationWins: make([]populationPointDTO, 0, len(stats.PopulationWins)),
	}
	for _, pt := range stats.PopulationWins {
		out.PopulationWins = append(out.PopulationWins, populationPointDTO(pt))
	}
	return out
}

func yearlyStatsToDTO(stats usecase.YearlyStats) yearlyStatsDTO {
	return yearlyStatsDTO{
		Year:         stats.Year,
		TotalMatches: stats.TotalMatches,
		TopTeams:     countryStatsToDTOs(stats.TopTeams),
		Matches:      matchesToDTOs(stats.Matches),
	}
}
