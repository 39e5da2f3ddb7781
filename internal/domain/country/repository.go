package country

import "context"

// Repository describes country persistence needs from use cases and the
// ingestion pipeline.
type Repository interface {
	ListAll(ctx context.Context) ([]Country, error)
	GetByID(ctx context.Context, id int64) (Country, bool, error)
	GetByName(ctx context.Context, name string) (Country, bool, error)
	// InsertBatch writes all items in one transaction and returns them
	// with assigned ids, in input order.
	InsertBatch(ctx context.Context, items []Country) ([]Country, error)
}
