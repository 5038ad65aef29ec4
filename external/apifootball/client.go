package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/platform/logging"
	"github.com/riskibarqy/football-101/internal/platform/resilience"
	"github.com/riskibarqy/football-101/internal/usecase"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://api-football-v1.p.rapidapi.com/v3"
	defaultHost    = "api-football-v1.p.rapidapi.com"
)

var apiKeyHeaderRegex = regexp.MustCompile(`(?i)x-rapidapi-key[:=]\s*[^\s&"']+`)
var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Host           string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to API-Football v3 through RapidAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
	backoff    func(attempt int) time.Duration
}

var _ usecase.FootballProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = hostFromBaseURL(baseURL)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       host,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker.Normalize()),
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}
}

// FetchStandings returns the league table for one season. Leagues split into
// groups come back flattened in provider order.
func (c *Client) FetchStandings(ctx context.Context, leagueID int64, season int) (usecase.ExternalLeagueTable, error) {
	var payload envelope[standingsItem]
	err := c.doJSON(ctx, "/standings", map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}, &payload)
	if err != nil {
		return usecase.ExternalLeagueTable{}, err
	}
	if msg := providerErrorMessage(payload.Errors); msg != "" {
		return usecase.ExternalLeagueTable{}, fmt.Errorf("provider rejected standings request: %s", msg)
	}
	if len(payload.Response) == 0 {
		return usecase.ExternalLeagueTable{}, fmt.Errorf("%w: no standings for league %d season %d", usecase.ErrNotFound, leagueID, season)
	}

	src := payload.Response[0].League
	table := usecase.ExternalLeagueTable{
		League: usecase.ExternalLeague{
			ID:      src.ID,
			Name:    strings.TrimSpace(src.Name),
			Type:    "League",
			Country: strings.TrimSpace(src.Country),
			LogoURL: strings.TrimSpace(src.Logo),
			Season:  src.Season,
		},
	}
	if table.League.ID == 0 {
		table.League.ID = leagueID
	}
	if table.League.Season == 0 {
		table.League.Season = season
	}

	for _, group := range src.Standings {
		for _, row := range group {
			table.Rows = append(table.Rows, mapStanding(row))
		}
	}
	return table, nil
}

// FetchUpcomingFixtures returns the next matches the provider has scheduled
// for the league.
func (c *Client) FetchUpcomingFixtures(ctx context.Context, leagueID int64, next int) ([]usecase.ExternalFixture, error) {
	if next < 1 {
		return nil, fmt.Errorf("%w: next must be at least 1", usecase.ErrInvalidInput)
	}

	var payload envelope[fixtureItem]
	err := c.doJSON(ctx, "/fixtures", map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"next":   strconv.Itoa(next),
	}, &payload)
	if err != nil {
		return nil, err
	}
	if msg := providerErrorMessage(payload.Errors); msg != "" {
		return nil, fmt.Errorf("provider rejected fixtures request: %s", msg)
	}

	out := make([]usecase.ExternalFixture, 0, len(payload.Response))
	for _, item := range payload.Response {
		mapped, err := mapFixture(item)
		if err != nil {
			c.logger.WarnContext(ctx, "skip api-football fixture", "fixture_id", item.Fixture.ID, "error", err)
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		return raw, execErr
	})
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", c.host)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, sanitizeSensitiveText(abbreviateBody(raw), c.apiKey))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, lastErr)
}

func mapStanding(row standingRow) usecase.ExternalStanding {
	return usecase.ExternalStanding{
		Rank: row.Rank,
		Team: usecase.ExternalTeam{
			ID:      row.Team.ID,
			Name:    strings.TrimSpace(row.Team.Name),
			LogoURL: strings.TrimSpace(row.Team.Logo),
		},
		Points:      row.Points,
		GoalsDiff:   row.GoalsDiff,
		Form:        derefString(row.Form),
		Description: derefString(row.Description),
		All:         mapRecord(row.All),
		Home:        mapRecord(row.Home),
		Away:        mapRecord(row.Away),
	}
}

func mapRecord(src recordTotals) usecase.ExternalRecord {
	return usecase.ExternalRecord{
		Played:       src.Played,
		Win:          src.Win,
		Draw:         src.Draw,
		Lose:         src.Lose,
		GoalsFor:     src.Goals.For,
		GoalsAgainst: src.Goals.Against,
	}
}

func mapFixture(item fixtureItem) (usecase.ExternalFixture, error) {
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(item.Fixture.Date))
	if err != nil {
		return usecase.ExternalFixture{}, fmt.Errorf("parse fixture date %q: %w", item.Fixture.Date, err)
	}

	return usecase.ExternalFixture{
		ID:          item.Fixture.ID,
		Date:        date.UTC(),
		Timezone:    strings.TrimSpace(item.Fixture.Timezone),
		Referee:     derefString(item.Fixture.Referee),
		VenueName:   derefString(item.Fixture.Venue.Name),
		VenueCity:   derefString(item.Fixture.Venue.City),
		StatusShort: strings.TrimSpace(item.Fixture.Status.Short),
		StatusLong:  strings.TrimSpace(item.Fixture.Status.Long),
		Elapsed:     item.Fixture.Status.Elapsed,
		Round:       strings.TrimSpace(item.League.Round),
		Home: usecase.ExternalTeam{
			ID:      item.Teams.Home.ID,
			Name:    strings.TrimSpace(item.Teams.Home.Name),
			LogoURL: strings.TrimSpace(item.Teams.Home.Logo),
		},
		Away: usecase.ExternalTeam{
			ID:      item.Teams.Away.ID,
			Name:    strings.TrimSpace(item.Teams.Away.Name),
			LogoURL: strings.TrimSpace(item.Teams.Away.Logo),
		},
		Goals:    fixture.Score{Home: item.Goals.Home, Away: item.Goals.Away},
		Halftime: fixture.Score{Home: item.Score.Halftime.Home, Away: item.Score.Halftime.Away},
		Fulltime: fixture.Score{Home: item.Score.Fulltime.Home, Away: item.Score.Fulltime.Away},
	}, nil
}

// providerErrorMessage flattens the errors field, which is [] on success and
// an object such as {"token":"..."} on failure.
func providerErrorMessage(raw any) string {
	switch v := raw.(type) {
	case map[string]any:
		parts := make([]string, 0, len(v))
		for key, value := range v {
			parts = append(parts, fmt.Sprintf("%s: %v", key, value))
		}
		return strings.Join(parts, "; ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, value := range v {
			parts = append(parts, fmt.Sprint(value))
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyHeaderRegex.ReplaceAllString(value, "x-rapidapi-key=REDACTED")
}

func hostFromBaseURL(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return defaultHost
	}
	return parsed.Host
}

func isCircuitFailure(err error) bool {
	return err != nil && stderrors.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
