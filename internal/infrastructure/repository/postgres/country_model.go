package postgres

import (
	"database/sql"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
)

type countryTableModel struct {
	ID         int64         `db:"id"`
	Name       string        `db:"name"`
	ISOCode    string        `db:"iso_code"`
	Continent  string        `db:"continent"`
	Region     string        `db:"region"`
	Status     string        `db:"status"`
	Developed  string        `db:"developed"`
	Population sql.NullInt64 `db:"population"`
	AreaSqKm   sql.NullInt64 `db:"area_sq_km"`
	CreatedAt  time.Time     `db:"created_at"`
}

type countryInsertModel struct {
	Name       string        `db:"name"`
	ISOCode    string        `db:"iso_code"`
	Continent  string        `db:"continent"`
	Region     string        `db:"region"`
	Status     string        `db:"status"`
	Developed  string        `db:"developed"`
	Population sql.NullInt64 `db:"population"`
	AreaSqKm   sql.NullInt64 `db:"area_sq_km"`
}

func (m countryTableModel) toDomain() country.Country {
	return country.Country{
		ID:         m.ID,
		Name:       m.Name,
		ISOCode:    m.ISOCode,
		Continent:  m.Continent,
		Region:     m.Region,
		Status:     m.Status,
		Developed:  m.Developed,
		Population: nullInt64ToPtr(m.Population),
		AreaSqKm:   nullInt64ToPtr(m.AreaSqKm),
	}
}
