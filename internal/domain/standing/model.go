package standing

import "fmt"

// Record holds one statistic group of a table row.
type Record struct {
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Standing is one team's row in a season table.
type Standing struct {
	SeasonID       int64
	TeamID         int64
	TeamName       string
	TeamLogoURL    *string
	Rank           int
	Points         int
	Overall        Record
	Home           Record
	Away           Record
	GoalDifference int
	Form           *string
	Description    *string
	LeagueName     string
	SeasonYear     int
}

func (s Standing) Validate() error {
	if s.TeamID <= 0 {
		return fmt.Errorf("standing team id must be greater than zero")
	}
	if s.Rank <= 0 {
		return fmt.Errorf("standing rank must be greater than zero")
	}

	return nil
}
