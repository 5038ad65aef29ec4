package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, item League) error
	Count(ctx context.Context) (int, error)
}
