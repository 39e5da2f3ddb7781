package postgres

import (
	"database/sql"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
)

type shootoutTableModel struct {
	ID             int64         `db:"id"`
	MatchID        int64         `db:"match_id"`
	ShootoutDate   *time.Time    `db:"shootout_date"`
	HomeTeamID     int64         `db:"home_team_id"`
	AwayTeamID     int64         `db:"away_team_id"`
	WinnerID       int64         `db:"winner_id"`
	FirstShooterID sql.NullInt64 `db:"first_shooter_id"`
	CreatedAt      time.Time     `db:"created_at"`
}

type shootoutInsertModel struct {
	MatchID        int64         `db:"match_id"`
	ShootoutDate   *time.Time    `db:"shootout_date"`
	HomeTeamID     int64         `db:"home_team_id"`
	AwayTeamID     int64         `db:"away_team_id"`
	WinnerID       int64         `db:"winner_id"`
	FirstShooterID sql.NullInt64 `db:"first_shooter_id"`
}

func (m shootoutTableModel) toDomain() shootout.Shootout {
	return shootout.Shootout{
		ID:             m.ID,
		MatchID:        m.MatchID,
		Date:           m.ShootoutDate,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		WinnerID:       m.WinnerID,
		FirstShooterID: nullInt64ToPtr(m.FirstShooterID),
	}
}
