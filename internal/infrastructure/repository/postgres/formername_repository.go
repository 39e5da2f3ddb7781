package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/formername"
	qb "github.com/panagiotisMouz/Football-Stats/internal/platform/querybuilder"
)

type FormerNameRepository struct {
	db *sqlx.DB
}

func NewFormerNameRepository(db *sqlx.DB) *FormerNameRepository {
	return &FormerNameRepository{db: db}
}

func (r *FormerNameRepository) ListAll(ctx context.Context) ([]formername.FormerName, error) {
	query, args, err := qb.Select("*").From("former_names").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select former names query: %w", err)
	}

	var rows []formerNameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select former names: %w", err)
	}

	out := make([]formername.FormerName, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FormerNameRepository) ListByCountry(ctx context.Context, countryID int64) ([]formername.FormerName, error) {
	query, args, err := qb.Select("*").From("former_names").
		Where(qb.Eq("country_id", countryID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select former names by country query: %w", err)
	}

	var rows []formerNameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select former names by country: %w", err)
	}

	out := make([]formername.FormerName, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FormerNameRepository) InsertBatch(ctx context.Context, items []formername.FormerName) ([]formername.FormerName, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx insert former names: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]formername.FormerName, 0, len(items))
	for _, item := range items {
		insertModel := formerNameInsertModel{
			CountryID:   item.CountryID,
			CurrentName: item.CurrentName,
			FormerName:  item.Former,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
		}
		query, args, err := qb.InsertModel("former_names", insertModel, "RETURNING id")
		if err != nil {
			return nil, fmt.Errorf("build insert former name query: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert former name %s: %w", item.Former, err)
		}
		out = append(out, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert former names tx: %w", err)
	}
	return out, nil
}
