package usecase

import "strings"

// QueryDefaults fills in the league and season a caller leaves out.
type QueryDefaults struct {
	League     string
	SeasonYear int
}

func (d QueryDefaults) league(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return d.League
	}
	return name
}

func (d QueryDefaults) season(year *int) int {
	if year == nil {
		return d.SeasonYear
	}
	return *year
}
