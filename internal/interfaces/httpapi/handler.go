package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/panagiotisMouz/Football-Stats/internal/usecase"
)

type Handler struct {
	countryService   *usecase.CountryService
	matchService     *usecase.MatchService
	playerService    *usecase.PlayerService
	scorerService    *usecase.ScorerService
	statsService     *usecase.StatsService
	ingestionService *usecase.IngestionService
	authService      *usecase.AuthService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	countryService *usecase.CountryService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	scorerService *usecase.ScorerService,
	statsService *usecase.StatsService,
	ingestionService *usecase.IngestionService,
	authService *usecase.AuthService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		countryService:   countryService,
		matchService:     matchService,
		playerService:    playerService,
		scorerService:    scorerService,
		statsService:     statsService,
		ingestionService: ingestionService,
		authService:      authService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses a positive int64 path segment.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryOptionalInt parses an optional integer query parameter, nil when the
// parameter is absent or blank.
func queryOptionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return &value, nil
}

func queryOptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return &value, nil
}
