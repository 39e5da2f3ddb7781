package postgres

import (
	"database/sql"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
)

type matchTableModel struct {
	ID            int64         `db:"id"`
	MatchDate     *time.Time    `db:"match_date"`
	HomeTeamID    int64         `db:"home_team_id"`
	AwayTeamID    int64         `db:"away_team_id"`
	HomeScore     int           `db:"home_score"`
	AwayScore     int           `db:"away_score"`
	Tournament    string        `db:"tournament"`
	City          string        `db:"city"`
	HostCountryID sql.NullInt64 `db:"host_country_id"`
	Neutral       bool          `db:"neutral"`
	CreatedAt     time.Time     `db:"created_at"`
}

type matchInsertModel struct {
	MatchDate     *time.Time    `db:"match_date"`
	HomeTeamID    int64         `db:"home_team_id"`
	AwayTeamID    int64         `db:"away_team_id"`
	HomeScore     int           `db:"home_score"`
	AwayScore     int           `db:"away_score"`
	Tournament    string        `db:"tournament"`
	City          string        `db:"city"`
	HostCountryID sql.NullInt64 `db:"host_country_id"`
	Neutral       bool          `db:"neutral"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		Date:          m.MatchDate,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Tournament:    m.Tournament,
		City:          m.City,
		HostCountryID: nullInt64ToPtr(m.HostCountryID),
		Neutral:       m.Neutral,
	}
}
