package standing

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, leagueName string, year int) ([]Standing, error)
	ListCurrent(ctx context.Context, leagueName string) ([]Standing, error)
	UpsertMany(ctx context.Context, seasonID int64, items []Standing) error
	Count(ctx context.Context) (int, error)
}
