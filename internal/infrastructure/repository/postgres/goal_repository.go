package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/goal"
	qb "github.com/panagiotisMouz/Football-Stats/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by match query: %w", err)
	}
	return r.selectGoals(ctx, query, args)
}

func (r *GoalRepository) ListByPlayer(ctx context.Context, playerID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by player query: %w", err)
	}
	return r.selectGoals(ctx, query, args)
}

func (r *GoalRepository) ListScorerTotals(ctx context.Context, limit int) ([]goal.ScorerTotal, error) {
	query := `
SELECT g.player_id,
       p.name AS player_name,
       c.name AS country_name,
       COUNT(*) AS total_goals
FROM goals g
JOIN players p ON p.id = g.player_id
JOIN countries c ON c.id = p.country_id
GROUP BY g.player_id, p.name, c.name
ORDER BY total_goals DESC, g.player_id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var rows []struct {
		PlayerID    int64  `db:"player_id"`
		PlayerName  string `db:"player_name"`
		CountryName string `db:"country_name"`
		TotalGoals  int    `db:"total_goals"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scorer totals: %w", err)
	}

	out := make([]goal.ScorerTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goal.ScorerTotal{
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			CountryName: row.CountryName,
			TotalGoals:  row.TotalGoals,
		})
	}
	return out, nil
}

func (r *GoalRepository) InsertBatch(ctx context.Context, items []goal.Goal) ([]goal.Goal, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx insert goals: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]goal.Goal, 0, len(items))
	for _, item := range items {
		insertModel := goalInsertModel{
			MatchID:  item.MatchID,
			PlayerID: item.PlayerID,
			TeamID:   item.TeamID,
			Minute:   intPtrToNullInt64(item.Minute),
			OwnGoal:  item.OwnGoal,
			Penalty:  item.Penalty,
		}
		query, args, err := qb.InsertModel("goals", insertModel, "RETURNING id")
		if err != nil {
			return nil, fmt.Errorf("build insert goal query: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert goal: %w", err)
		}
		out = append(out, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert goals tx: %w", err)
	}
	return out, nil
}

func (r *GoalRepository) selectGoals(ctx context.Context, query string, args []any) ([]goal.Goal, error) {
	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
