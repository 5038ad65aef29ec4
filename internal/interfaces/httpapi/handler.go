package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-101/internal/platform/logging"
	"github.com/riskibarqy/football-101/internal/usecase"
)

// ServiceInfo is echoed by the root health endpoint.
type ServiceInfo struct {
	Version    string
	DataSource string
}

type Handler struct {
	seasonService   *usecase.SeasonService
	standingService *usecase.StandingService
	fixtureService  *usecase.FixtureService
	teamService     *usecase.TeamService
	info            ServiceInfo
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	standingService *usecase.StandingService,
	fixtureService *usecase.FixtureService,
	teamService *usecase.TeamService,
	info ServiceInfo,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(info.Version) == "" {
		info.Version = "1.0.0"
	}
	if strings.TrimSpace(info.DataSource) == "" {
		info.DataSource = "PostgreSQL Database"
	}

	return &Handler{
		seasonService:   seasonService,
		standingService: standingService,
		fixtureService:  fixtureService,
		teamService:     teamService,
		info:            info,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure records err at a level matching its mapped status. Server side
// failures keep the raw error text, which the response hides.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, resource string, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err, resource).Server {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

type leagueRequest struct {
	League string `validate:"max=255"`
}

type standingsRequest struct {
	League string `validate:"max=255"`
	Season *int   `validate:"omitempty,min=1900,max=2100"`
}

type fixturesRequest struct {
	League string `validate:"max=255"`
	Season *int   `validate:"omitempty,min=1900,max=2100"`
	Limit  *int   `validate:"omitempty,min=1,max=1000"`
}

type viewRequest struct {
	League string `validate:"max=255"`
	Limit  *int   `validate:"omitempty,min=1,max=1000"`
}

type teamRequest struct {
	ID int64 `validate:"gt=0"`
}

func queryLeague(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("league"))
}

// queryInt reads an optional integer query parameter. A missing or blank
// value yields nil.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s parameter %q", usecase.ErrInvalidInput, name, raw)
	}
	return &value, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
