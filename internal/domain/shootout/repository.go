package shootout

import "context"

type Repository interface {
	GetByMatch(ctx context.Context, matchID int64) (Shootout, bool, error)
	InsertBatch(ctx context.Context, items []Shootout) ([]Shootout, error)
}
