package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-101/internal/usecase"
)

var errUsage = errors.New("invalid usage")

type populator interface {
	Populate(ctx context.Context, input usecase.PopulateInput) (usecase.PopulateResult, error)
}

type currentSetter interface {
	SetCurrent(ctx context.Context, leagueName string, year int) (int64, error)
}

type reporter interface {
	Report(ctx context.Context) (usecase.VerifyReport, error)
}

type cli struct {
	defaultSeason int
	defaultLeague string
	out           io.Writer

	seasons   currentSetter
	verifier  reporter
	populator func() (populator, error)
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "populate":
		return c.populate(ctx, args[1:])
	case "set-current":
		return c.setCurrent(ctx, args[1:])
	case "verify":
		return c.verify(ctx)
	case "help", "-h", "--help":
		printUsage(c.out)
		return nil
	default:
		return errUsage
	}
}

func (c *cli) populate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("populate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	leagueKey := fs.String("league", "all", "league key to populate (premier, laliga or all)")
	seasonYear := fs.Int("season", c.defaultSeason, "season year")
	noFixtures := fs.Bool("no-fixtures", false, "skip upcoming fixtures")
	fixtureCount := fs.Int("fixtures", 0, "number of upcoming fixtures to fetch")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	if *fixtureCount < 0 {
		return fmt.Errorf("%w: --fixtures must be >= 0", errUsage)
	}

	svc, err := c.populator()
	if err != nil {
		return err
	}

	result, err := svc.Populate(ctx, usecase.PopulateInput{
		LeagueKeys:   []string{*leagueKey},
		Season:       *seasonYear,
		SkipFixtures: *noFixtures,
		FixtureCount: *fixtureCount,
	})
	if err != nil {
		return err
	}

	if err := renderPopulateResult(c.out, result); err != nil {
		return err
	}
	if result.SuccessCount == 0 && result.FailedCount > 0 {
		return fmt.Errorf("population failed for all %d league(s)", result.FailedCount)
	}
	return nil
}

// setCurrent accepts the year before or after the --league flag.
func (c *cli) setCurrent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-current", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	leagueName := fs.String("league", c.defaultLeague, "league name")

	var rawYear string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		rawYear, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if rawYear == "" {
		rawYear = fs.Arg(0)
	}
	if strings.TrimSpace(rawYear) == "" {
		return fmt.Errorf("%w: set-current requires a season year", errUsage)
	}

	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return fmt.Errorf("%w: invalid season year %q", errUsage, rawYear)
	}

	rows, err := c.seasons.SetCurrent(ctx, *leagueName, year)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.out, "Updated %d season(s): %s %d is now current\n", rows, *leagueName, year)
	return err
}

func (c *cli) verify(ctx context.Context) error {
	report, err := c.verifier.Report(ctx)
	if err != nil {
		return err
	}
	return renderVerifyReport(c.out, report)
}

func printUsage(w io.Writer) {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "usage: %s <populate|set-current|verify> [args]\n", name)
	fmt.Fprintln(w, "examples:")
	fmt.Fprintf(w, "  %s populate --league premier --season 2024\n", name)
	fmt.Fprintf(w, "  %s populate --league all --no-fixtures\n", name)
	fmt.Fprintf(w, "  %s set-current 2024 --league \"Premier League\"\n", name)
	fmt.Fprintf(w, "  %s verify\n", name)
}
