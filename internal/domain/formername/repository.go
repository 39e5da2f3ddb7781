package formername

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]FormerName, error)
	ListByCountry(ctx context.Context, countryID int64) ([]FormerName, error)
	InsertBatch(ctx context.Context, items []FormerName) ([]FormerName, error)
}
