package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/riskibarqy/football-101/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

func renderPopulateResult(w io.Writer, result usecase.PopulateResult) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "Season %d: %d succeeded, %d failed\n", result.Season, result.SuccessCount, result.FailedCount)
	for _, row := range result.Leagues {
		name := row.LeagueName
		if name == "" {
			name = row.LeagueKey
		}
		if row.Message != "" {
			fmt.Fprintf(buf, "  [%s] %s (league_id=%d): %s\n", row.Status, name, row.LeagueID, row.Message)
			continue
		}
		fmt.Fprintf(buf, "  [%s] %s (league_id=%d season_id=%d): teams=%d standings=%d fixtures=%d in %dms\n",
			row.Status, name, row.LeagueID, row.SeasonID, row.Teams, row.Standings, row.Fixtures, row.DurationMs)
	}

	_, err := w.Write(buf.B)
	return err
}

func renderVerifyReport(w io.Writer, report usecase.VerifyReport) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("Table counts:\n")
	for _, count := range report.Counts {
		fmt.Fprintf(buf, "  %-10s %d\n", count.Table, count.Rows)
	}

	buf.WriteString("\nSeasons:\n")
	if len(report.Seasons) == 0 {
		buf.WriteString("  (none)\n")
	}
	for _, s := range report.Seasons {
		marker := ""
		if s.IsCurrent {
			marker = " (current)"
		}
		fmt.Fprintf(buf, "  %s %d%s: %d teams\n", s.LeagueName, s.Year, marker, s.Teams)
	}

	buf.WriteString("\nSample teams:\n")
	if len(report.SampleTeams) == 0 {
		buf.WriteString("  (none)\n")
	}
	for _, t := range report.SampleTeams {
		fmt.Fprintf(buf, "  %d %s", t.ID, t.Name)
		if t.Code != nil && strings.TrimSpace(*t.Code) != "" {
			fmt.Fprintf(buf, " [%s]", *t.Code)
		}
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.B)
	return err
}
