package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueName string) ([]Season, error)
	GetByLeagueAndYear(ctx context.Context, leagueName string, year int) (Season, bool, error)
	Upsert(ctx context.Context, item Season) (int64, error)
	// SetCurrent marks the given year as current and clears the flag on the
	// league's other seasons. It returns the number of seasons flagged.
	SetCurrent(ctx context.Context, leagueName string, year int) (int64, error)
	ListTeamCounts(ctx context.Context) ([]TeamCount, error)
	Count(ctx context.Context) (int, error)
}
