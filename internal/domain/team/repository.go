package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	// ListByLeague returns teams linked to any season of the league through
	// a standing or a fixture.
	ListByLeague(ctx context.Context, leagueName string) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	UpsertMany(ctx context.Context, items []Team) error
	Count(ctx context.Context) (int, error)
}
