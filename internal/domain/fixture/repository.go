package fixture

import "context"

// Repository exposes fixture persistence operations. A limit of zero
// means no limit.
type Repository interface {
	ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]Fixture, error)
	ListUpcoming(ctx context.Context, leagueName string, limit int) ([]Fixture, error)
	ListRecentResults(ctx context.Context, leagueName string, limit int) ([]Fixture, error)
	UpsertMany(ctx context.Context, seasonID int64, items []Fixture) error
	Count(ctx context.Context) (int, error)
}
