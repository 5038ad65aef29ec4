package season

import (
	"testing"
	"time"
)

func TestDefaultWindow(t *testing.T) {
	t.Parallel()

	start, end := DefaultWindow(2024)
	if start.Format(time.DateOnly) != "2024-08-01" {
		t.Fatalf("unexpected start date: %s", start.Format(time.DateOnly))
	}
	if end.Format(time.DateOnly) != "2025-05-31" {
		t.Fatalf("unexpected end date: %s", end.Format(time.DateOnly))
	}
}

func TestSeasonValidate(t *testing.T) {
	t.Parallel()

	start, end := DefaultWindow(2024)
	if err := (Season{LeagueID: 39, Year: 2024, StartDate: &start, EndDate: &end}).Validate(); err != nil {
		t.Fatalf("expected valid season, got %v", err)
	}
	if err := (Season{LeagueID: 39, Year: 2024, StartDate: &end, EndDate: &start}).Validate(); err == nil {
		t.Fatalf("expected error for inverted window")
	}
	if err := (Season{Year: 2024}).Validate(); err == nil {
		t.Fatalf("expected error for missing league id")
	}
}
