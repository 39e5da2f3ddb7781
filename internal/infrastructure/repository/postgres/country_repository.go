package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/country"
	qb "github.com/panagiotisMouz/Football-Stats/internal/platform/querybuilder"
)

type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepository(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) ListAll(ctx context.Context) ([]country.Country, error) {
	query, args, err := qb.Select("*").From("countries").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select countries query: %w", err)
	}

	var rows []countryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}

	out := make([]country.Country, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (country.Country, bool, error) {
	query, args, err := qb.Select("*").From("countries").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return country.Country{}, false, fmt.Errorf("build get country by id query: %w", err)
	}

	var row countryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return country.Country{}, false, nil
		}
		return country.Country{}, false, fmt.Errorf("get country by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CountryRepository) GetByName(ctx context.Context, name string) (country.Country, bool, error) {
	query, args, err := qb.Select("*").From("countries").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return country.Country{}, false, fmt.Errorf("build get country by name query: %w", err)
	}

	var row countryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return country.Country{}, false, nil
		}
		return country.Country{}, false, fmt.Errorf("get country by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CountryRepository) InsertBatch(ctx context.Context, items []country.Country) ([]country.Country, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx insert countries: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]country.Country, 0, len(items))
	for _, item := range items {
		insertModel := countryInsertModel{
			Name:       item.Name,
			ISOCode:    item.ISOCode,
			Continent:  item.Continent,
			Region:     item.Region,
			Status:     item.Status,
			Developed:  item.Developed,
			Population: ptrToNullInt64(item.Population),
			AreaSqKm:   ptrToNullInt64(item.AreaSqKm),
		}
		query, args, err := qb.InsertModel("countries", insertModel, "RETURNING id")
		if err != nil {
			return nil, fmt.Errorf("build insert country query: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert country %s: %w", item.Name, err)
		}
		out = append(out, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert countries tx: %w", err)
	}
	return out, nil
}
