package postgres

import (
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/formername"
)

type formerNameTableModel struct {
	ID          int64      `db:"id"`
	CountryID   int64      `db:"country_id"`
	CurrentName string     `db:"current_name"`
	FormerName  string     `db:"former_name"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

type formerNameInsertModel struct {
	CountryID   int64      `db:"country_id"`
	CurrentName string     `db:"current_name"`
	FormerName  string     `db:"former_name"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
}

func (m formerNameTableModel) toDomain() formername.FormerName {
	return formername.FormerName{
		ID:          m.ID,
		CountryID:   m.CountryID,
		CurrentName: m.CurrentName,
		Former:      m.FormerName,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}
}
