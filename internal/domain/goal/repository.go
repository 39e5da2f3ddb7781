package goal

import "context"

type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]Goal, error)
	// ListScorerTotals returns players ranked by descending total goal
	// count, truncated to limit. Ties beyond the count are unordered.
	ListScorerTotals(ctx context.Context, limit int) ([]ScorerTotal, error)
	InsertBatch(ctx context.Context, items []Goal) ([]Goal, error)
}
