package postgres

import (
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/player"
)

type playerTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CountryID int64     `db:"country_id"`
	CreatedAt time.Time `db:"created_at"`
}

type playerInsertModel struct {
	Name      string `db:"name"`
	CountryID int64  `db:"country_id"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{ID: m.ID, Name: m.Name, CountryID: m.CountryID}
}
