package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/panagiotisMouz/Football-Stats/internal/domain/match"
	qb "github.com/panagiotisMouz/Football-Stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByCountry(ctx context.Context, countryID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Expr("(home_team_id = ? OR away_team_id = ?)", countryID, countryID)).
		OrderBy("match_date NULLS FIRST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by country query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListByYear(ctx context.Context, year int) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Expr("EXTRACT(YEAR FROM match_date) = ?", year)).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by year query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) InsertBatch(ctx context.Context, items []match.Match) ([]match.Match, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx insert matches: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		insertModel := matchInsertModel{
			MatchDate:     item.Date,
			HomeTeamID:    item.HomeTeamID,
			AwayTeamID:    item.AwayTeamID,
			HomeScore:     item.HomeScore,
			AwayScore:     item.AwayScore,
			Tournament:    item.Tournament,
			City:          item.City,
			HostCountryID: ptrToNullInt64(item.HostCountryID),
			Neutral:       item.Neutral,
		}
		query, args, err := qb.InsertModel("matches", insertModel, "RETURNING id")
		if err != nil {
			return nil, fmt.Errorf("build insert match query: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert match: %w", err)
		}
		out = append(out, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert matches tx: %w", err)
	}
	return out, nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
