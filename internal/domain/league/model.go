package league

import (
	"fmt"
	"strings"
)

const (
	TypeLeague = "League"
	TypeCup    = "Cup"
)

// League is a competition mirrored from the sports data provider.
type League struct {
	ID      int64
	Name    string
	Type    string
	Country string
	LogoURL *string
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
