package fixture

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusNotStarted  = "NS"
	StatusToBeDecided = "TBD"
	StatusFullTime    = "FT"
	StatusExtraTime   = "AET"
	StatusPenalties   = "PEN"
)

// Score is a nullable home/away pair; both sides stay nil until played.
type Score struct {
	Home *int
	Away *int
}

// Fixture is one match, identified by the provider's match id.
type Fixture struct {
	ID           int64
	SeasonID     int64
	Round        string
	Date         time.Time
	Timezone     *string
	Venue        *string
	City         *string
	Referee      *string
	HomeTeamID   int64
	HomeTeamName string
	AwayTeamID   int64
	AwayTeamName string
	Goals        Score
	Halftime     Score
	Fulltime     Score
	Status       string
	StatusLong   *string
	Elapsed      *int
	LeagueName   string
	SeasonYear   int
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("fixture id must be greater than zero")
	}
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("fixture team ids must be greater than zero")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture home and away team must differ")
	}
	if f.Date.IsZero() {
		return fmt.Errorf("fixture date is required")
	}

	return nil
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsUpcomingStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusNotStarted, StatusToBeDecided:
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFullTime, StatusExtraTime, StatusPenalties:
		return true
	default:
		return false
	}
}
