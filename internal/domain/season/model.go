package season

import (
	"fmt"
	"time"
)

// Season is one edition of a league, keyed by the year it starts in.
type Season struct {
	ID         int64
	LeagueID   int64
	LeagueName string
	Year       int
	StartDate  *time.Time
	EndDate    *time.Time
	IsCurrent  bool
}

// TeamCount summarizes how many teams have a standing row in a season.
type TeamCount struct {
	LeagueName string
	Year       int
	IsCurrent  bool
	Teams      int
}

func (s Season) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id must be greater than zero")
	}
	if s.Year <= 0 {
		return fmt.Errorf("season year must be greater than zero")
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return fmt.Errorf("season end date must not be before start date")
	}

	return nil
}

// DefaultWindow returns the conventional August to May window for a season year.
func DefaultWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.May, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
