package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/shootout"
	qb "github.com/panagiotisMouz/Football-Stats/internal/platform/querybuilder"
)

type ShootoutRepository struct {
	db *sqlx.DB
}

func NewShootoutRepository(db *sqlx.DB) *ShootoutRepository {
	return &ShootoutRepository{db: db}
}

func (r *ShootoutRepository) GetByMatch(ctx context.Context, matchID int64) (shootout.Shootout, bool, error) {
	query, args, err := qb.Select("*").From("shootouts").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return shootout.Shootout{}, false, fmt.Errorf("build get shootout by match query: %w", err)
	}

	var row shootoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return shootout.Shootout{}, false, nil
		}
		return shootout.Shootout{}, false, fmt.Errorf("get shootout by match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ShootoutRepository) InsertBatch(ctx context.Context, items []shootout.Shootout) ([]shootout.Shootout, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx insert shootouts: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]shootout.Shootout, 0, len(items))
	for _, item := range items {
		insertModel := shootoutInsertModel{
			MatchID:        item.MatchID,
			ShootoutDate:   item.Date,
			HomeTeamID:     item.HomeTeamID,
			AwayTeamID:     item.AwayTeamID,
			WinnerID:       item.WinnerID,
			FirstShooterID: ptrToNullInt64(item.FirstShooterID),
		}
		query, args, err := qb.InsertModel("shootouts", insertModel, "RETURNING id")
		if err != nil {
			return nil, fmt.Errorf("build insert shootout query: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert shootout: %w", err)
		}
		out = append(out, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert shootouts tx: %w", err)
	}
	return out, nil
}
