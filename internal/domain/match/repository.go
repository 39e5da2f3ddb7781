package match

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	ListByCountry(ctx context.Context, countryID int64) ([]Match, error)
	ListByYear(ctx context.Context, year int) ([]Match, error)
	InsertBatch(ctx context.Context, items []Match) ([]Match, error)
}
