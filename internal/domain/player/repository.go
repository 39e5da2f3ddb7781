package player

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	ListByCountry(ctx context.Context, countryID int64) ([]Player, error)
	InsertBatch(ctx context.Context, items []Player) ([]Player, error)
}
