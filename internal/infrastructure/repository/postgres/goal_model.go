package postgres

import (
	"database/sql"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
)

type goalTableModel struct {
	ID        int64         `db:"id"`
	MatchID   int64         `db:"match_id"`
	PlayerID  int64         `db:"player_id"`
	TeamID    int64         `db:"team_id"`
	Minute    sql.NullInt64 `db:"minute"`
	OwnGoal   bool          `db:"own_goal"`
	Penalty   bool          `db:"penalty"`
	CreatedAt time.Time     `db:"created_at"`
}

type goalInsertModel struct {
	MatchID  int64         `db:"match_id"`
	PlayerID int64         `db:"player_id"`
	TeamID   int64         `db:"team_id"`
	Minute   sql.NullInt64 `db:"minute"`
	OwnGoal  bool          `db:"own_goal"`
	Penalty  bool          `db:"penalty"`
}

func (m goalTableModel) toDomain() goal.Goal {
	return goal.Goal{
		ID:       m.ID,
		MatchID:  m.MatchID,
		PlayerID: m.PlayerID,
		TeamID:   m.TeamID,
		Minute:   nullInt64ToIntPtr(m.Minute),
		OwnGoal:  m.OwnGoal,
		Penalty:  m.Penalty,
	}
}
