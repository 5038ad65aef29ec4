package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/league"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
	"github.com/riskibarqy/football-101/internal/platform/logging"
)

// FootballProvider is the sports data source the population job mirrors.
type FootballProvider interface {
	FetchStandings(ctx context.Context, leagueID int64, season int) (ExternalLeagueTable, error)
	FetchUpcomingFixtures(ctx context.Context, leagueID int64, next int) ([]ExternalFixture, error)
}

type ExternalLeague struct {
	ID      int64
	Name    string
	Type    string
	Country string
	LogoURL string
	Season  int
}

type ExternalTeam struct {
	ID      int64
	Name    string
	LogoURL string
}

type ExternalRecord struct {
	Played       int
	Win          int
	Draw         int
	Lose         int
	GoalsFor     int
	GoalsAgainst int
}

type ExternalStanding struct {
	Rank        int
	Team        ExternalTeam
	Points      int
	GoalsDiff   int
	Form        string
	Description string
	All         ExternalRecord
	Home        ExternalRecord
	Away        ExternalRecord
}

type ExternalLeagueTable struct {
	League ExternalLeague
	Rows   []ExternalStanding
}

type ExternalFixture struct {
	ID          int64
	Date        time.Time
	Timezone    string
	Referee     string
	VenueName   string
	VenueCity   string
	StatusShort string
	StatusLong  string
	Elapsed     *int
	Round       string
	Home        ExternalTeam
	Away        ExternalTeam
	Goals       fixture.Score
	Halftime    fixture.Score
	Fulltime    fixture.Score
}

type PopulationConfig struct {
	LeagueIDByKey  map[string]int64
	CurrentSeason  int
	RateLimitDelay time.Duration
	Workers        int
	FixtureCount   int
}

type PopulateInput struct {
	// LeagueKeys selects leagues from the configured key map; empty or "all"
	// selects every configured league.
	LeagueKeys   []string
	Season       int
	SkipFixtures bool
	FixtureCount int
}

type PopulateResult struct {
	Season       int
	SuccessCount int
	FailedCount  int
	Leagues      []PopulateLeagueResult
}

type PopulateLeagueResult struct {
	LeagueKey  string
	LeagueID   int64
	LeagueName string
	SeasonID   int64
	Status     string
	Teams      int
	Standings  int
	Fixtures   int
	DurationMs int64
	Message    string
}

const (
	populateStatusSuccess = "success"
	populateStatusFailed  = "failed"
)

type PopulationService struct {
	provider     FootballProvider
	leagueRepo   league.Repository
	seasonRepo   season.Repository
	teamRepo     team.Repository
	standingRepo standing.Repository
	fixtureRepo  fixture.Repository
	cfg          PopulationConfig
	logger       *logging.Logger
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewPopulationService(
	provider FootballProvider,
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	standingRepo standing.Repository,
	fixtureRepo fixture.Repository,
	cfg PopulationConfig,
	logger *logging.Logger,
) *PopulationService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.FixtureCount <= 0 {
		cfg.FixtureCount = 50
	}

	return &PopulationService{
		provider:     provider,
		leagueRepo:   leagueRepo,
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		fixtureRepo:  fixtureRepo,
		cfg:          cfg,
		logger:       logger,
		sleep:        sleepContext,
	}
}

type populateTarget struct {
	key      string
	leagueID int64
}

type populateFetch struct {
	target   populateTarget
	table    ExternalLeagueTable
	fixtures []ExternalFixture
	err      error
	started  time.Time
}

// Populate fetches provider data for the selected leagues concurrently and
// applies the upserts one league at a time.
func (s *PopulationService) Populate(ctx context.Context, input PopulateInput) (PopulateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.Populate")
	defer span.End()

	if s.provider == nil {
		return PopulateResult{}, fmt.Errorf("%w: sports data provider is not configured", ErrDependencyUnavailable)
	}

	targets, err := s.resolveTargets(input.LeagueKeys)
	if err != nil {
		return PopulateResult{}, err
	}
	year := input.Season
	if year == 0 {
		year = s.cfg.CurrentSeason
	}
	if year <= 0 {
		return PopulateResult{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	fixtureCount := input.FixtureCount
	if fixtureCount <= 0 {
		fixtureCount = s.cfg.FixtureCount
	}

	fetched, err := s.fetchAll(ctx, targets, year, !input.SkipFixtures, fixtureCount)
	if err != nil {
		return PopulateResult{}, err
	}

	result := PopulateResult{Season: year, Leagues: make([]PopulateLeagueResult, 0, len(fetched))}
	for _, item := range fetched {
		row := s.apply(ctx, item, year)
		if row.Status == populateStatusSuccess {
			result.SuccessCount++
			s.logger.InfoContext(ctx, "league populated",
				"league", row.LeagueName,
				"season", year,
				"teams", row.Teams,
				"standings", row.Standings,
				"fixtures", row.Fixtures,
			)
		} else {
			result.FailedCount++
			s.logger.WarnContext(ctx, "league population failed",
				"league_key", row.LeagueKey,
				"season", year,
				"error", row.Message,
			)
		}
		result.Leagues = append(result.Leagues, row)
	}

	return result, nil
}

func (s *PopulationService) resolveTargets(keys []string) ([]populateTarget, error) {
	selected := make(map[string]struct{})
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if key == "all" {
			selected = nil
			break
		}
		selected[key] = struct{}{}
	}

	var targets []populateTarget
	if len(selected) == 0 {
		for key, id := range s.cfg.LeagueIDByKey {
			targets = append(targets, populateTarget{key: key, leagueID: id})
		}
	} else {
		for key := range selected {
			id, ok := s.cfg.LeagueIDByKey[key]
			if !ok {
				return nil, fmt.Errorf("%w: unknown league key %q", ErrInvalidInput, key)
			}
			targets = append(targets, populateTarget{key: key, leagueID: id})
		}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no leagues configured", ErrInvalidInput)
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].key < targets[j].key })
	return targets, nil
}

func (s *PopulationService) fetchAll(ctx context.Context, targets []populateTarget, year int, withFixtures bool, fixtureCount int) ([]populateFetch, error) {
	workerCount := s.cfg.Workers
	if workerCount > len(targets) {
		workerCount = len(targets)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]populateFetch, len(targets))
	var workers sync.WaitGroup
	for i, target := range targets {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.fetchLeague(ctx, target, year, withFixtures, fixtureCount)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return out, nil
}

func (s *PopulationService) fetchLeague(ctx context.Context, target populateTarget, year int, withFixtures bool, fixtureCount int) populateFetch {
	item := populateFetch{target: target, started: time.Now()}

	table, err := s.provider.FetchStandings(ctx, target.leagueID, year)
	if err != nil {
		item.err = fmt.Errorf("fetch standings league_id=%d season=%d: %w", target.leagueID, year, err)
		return item
	}
	item.table = table
	if !withFixtures {
		return item
	}

	if err := s.sleep(ctx, s.cfg.RateLimitDelay); err != nil {
		item.err = err
		return item
	}
	fixtures, err := s.provider.FetchUpcomingFixtures(ctx, target.leagueID, fixtureCount)
	if err != nil {
		item.err = fmt.Errorf("fetch fixtures league_id=%d: %w", target.leagueID, err)
		return item
	}
	item.fixtures = fixtures
	return item
}

func (s *PopulationService) apply(ctx context.Context, item populateFetch, year int) PopulateLeagueResult {
	row := PopulateLeagueResult{
		LeagueKey: item.target.key,
		LeagueID:  item.target.leagueID,
		Status:    populateStatusFailed,
	}
	defer func() {
		row.DurationMs = time.Since(item.started).Milliseconds()
	}()

	if item.err != nil {
		row.Message = item.err.Error()
		return row
	}

	leagueItem := leagueFromExternal(item.target.leagueID, item.table.League)
	row.LeagueName = leagueItem.Name
	if err := leagueItem.Validate(); err != nil {
		row.Message = fmt.Sprintf("invalid league: %v", err)
		return row
	}
	if err := s.leagueRepo.Upsert(ctx, leagueItem); err != nil {
		row.Message = fmt.Sprintf("upsert league: %v", err)
		return row
	}

	start, end := season.DefaultWindow(year)
	seasonItem := season.Season{
		LeagueID:  leagueItem.ID,
		Year:      year,
		StartDate: &start,
		EndDate:   &end,
		IsCurrent: year == s.cfg.CurrentSeason,
	}
	seasonID, err := s.seasonRepo.Upsert(ctx, seasonItem)
	if err != nil {
		row.Message = fmt.Sprintf("upsert season: %v", err)
		return row
	}
	row.SeasonID = seasonID

	teams := collectTeams(item.table.Rows, item.fixtures)
	if err := s.teamRepo.UpsertMany(ctx, teams); err != nil {
		row.Message = fmt.Sprintf("upsert teams: %v", err)
		return row
	}
	row.Teams = len(teams)

	standings := make([]standing.Standing, 0, len(item.table.Rows))
	for _, ext := range item.table.Rows {
		value := standingFromExternal(ext)
		if err := value.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip invalid standing", "league", leagueItem.Name, "team_id", ext.Team.ID, "error", err)
			continue
		}
		standings = append(standings, value)
	}
	if err := s.standingRepo.UpsertMany(ctx, seasonID, standings); err != nil {
		row.Message = fmt.Sprintf("upsert standings: %v", err)
		return row
	}
	row.Standings = len(standings)

	fixtures := make([]fixture.Fixture, 0, len(item.fixtures))
	for _, ext := range item.fixtures {
		value := fixtureFromExternal(ext)
		if err := value.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip invalid fixture", "league", leagueItem.Name, "fixture_id", ext.ID, "error", err)
			continue
		}
		fixtures = append(fixtures, value)
	}
	if err := s.fixtureRepo.UpsertMany(ctx, seasonID, fixtures); err != nil {
		row.Message = fmt.Sprintf("upsert fixtures: %v", err)
		return row
	}
	row.Fixtures = len(fixtures)

	row.Status = populateStatusSuccess
	return row
}

func leagueFromExternal(fallbackID int64, ext ExternalLeague) league.League {
	id := ext.ID
	if id <= 0 {
		id = fallbackID
	}
	return league.League{
		ID:      id,
		Name:    strings.TrimSpace(ext.Name),
		Type:    strings.TrimSpace(ext.Type),
		Country: strings.TrimSpace(ext.Country),
		LogoURL: optionalString(ext.LogoURL),
	}
}

func collectTeams(rows []ExternalStanding, fixtures []ExternalFixture) []team.Team {
	byID := make(map[int64]team.Team, len(rows)+2*len(fixtures))
	add := func(ext ExternalTeam) {
		if ext.ID <= 0 || strings.TrimSpace(ext.Name) == "" {
			return
		}
		if _, ok := byID[ext.ID]; ok {
			return
		}
		byID[ext.ID] = team.Team{
			ID:      ext.ID,
			Name:    strings.TrimSpace(ext.Name),
			LogoURL: optionalString(ext.LogoURL),
		}
	}
	for _, row := range rows {
		add(row.Team)
	}
	for _, item := range fixtures {
		add(item.Home)
		add(item.Away)
	}

	out := make([]team.Team, 0, len(byID))
	for _, item := range byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func standingFromExternal(ext ExternalStanding) standing.Standing {
	return standing.Standing{
		TeamID:         ext.Team.ID,
		Rank:           ext.Rank,
		Points:         ext.Points,
		Overall:        recordFromExternal(ext.All),
		Home:           recordFromExternal(ext.Home),
		Away:           recordFromExternal(ext.Away),
		GoalDifference: ext.GoalsDiff,
		Form:           formString(ext.Form),
		Description:    optionalString(ext.Description),
	}
}

func recordFromExternal(ext ExternalRecord) standing.Record {
	return standing.Record{
		Played:       ext.Played,
		Wins:         ext.Win,
		Draws:        ext.Draw,
		Losses:       ext.Lose,
		GoalsFor:     ext.GoalsFor,
		GoalsAgainst: ext.GoalsAgainst,
	}
}

func fixtureFromExternal(ext ExternalFixture) fixture.Fixture {
	return fixture.Fixture{
		ID:         ext.ID,
		Round:      strings.TrimSpace(ext.Round),
		Date:       ext.Date.UTC(),
		Timezone:   optionalString(ext.Timezone),
		Venue:      optionalString(ext.VenueName),
		City:       optionalString(ext.VenueCity),
		Referee:    optionalString(ext.Referee),
		HomeTeamID: ext.Home.ID,
		AwayTeamID: ext.Away.ID,
		Goals:      ext.Goals,
		Halftime:   ext.Halftime,
		Fulltime:   ext.Fulltime,
		Status:     fixture.NormalizeStatus(ext.StatusShort),
		StatusLong: optionalString(ext.StatusLong),
		Elapsed:    ext.Elapsed,
	}
}

// formString keeps the provider's result sequence untouched.
func formString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
