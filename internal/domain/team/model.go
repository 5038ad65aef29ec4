package team

import (
	"fmt"
	"strings"
)

// Team is a club; rows are shared by every season it plays in.
type Team struct {
	ID        int64
	Name      string
	Code      *string
	Country   *string
	Founded   *int
	LogoURL   *string
	VenueName *string
	VenueCity *string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
