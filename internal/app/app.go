package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/panagiotisMouz/Football-Stats/internal/config"
	"github.com/panagiotisMouz/Football-Stats/internal/etl"
	"github.com/panagiotisMouz/Football-Stats/internal/infrastructure/auth"
	"github.com/panagiotisMouz/Football-Stats/internal/infrastructure/repository/postgres"
	"github.com/panagiotisMouz/Football-Stats/internal/interfaces/httpapi"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/cache"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/logging"
	"github.com/panagiotisMouz/Football-Stats/internal/usecase"
)

// App bundles the HTTP server with the startup ingestion job and the
// resources both share.
type App struct {
	Server    *http.Server
	Ingestion *usecase.IngestionService

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database %s: %w", redactDBURL(cfg.DBURL), err)
	}

	countryRepo := postgres.NewCountryRepository(db)
	formerNameRepo := postgres.NewFormerNameRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	shootoutRepo := postgres.NewShootoutRepository(db)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	pipeline := etl.NewPipeline(countryRepo, formerNameRepo, matchRepo, playerRepo, goalRepo, shootoutRepo, logger)
	statsSvc := usecase.NewStatsService(countryRepo, matchRepo, store)
	ingestionSvc := usecase.NewIngestionService(pipeline, statsSvc, cfg.CSVDataDir, logger)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.ServiceName, cfg.JWTTokenTTL)
	authSvc := usecase.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, jwtManager)

	httpLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	handler := httpapi.NewHandler(
		usecase.NewCountryService(countryRepo, formerNameRepo, matchRepo),
		usecase.NewMatchService(matchRepo, goalRepo, shootoutRepo),
		usecase.NewPlayerService(playerRepo),
		usecase.NewScorerService(playerRepo, countryRepo, goalRepo, matchRepo),
		statsSvc,
		ingestionSvc,
		authSvc,
		httpLogger,
	)
	router := httpapi.NewRouter(handler, jwtManager, httpLogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:    server,
		Ingestion: ingestionSvc,
		db:        db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func slogLevel(level logging.Level) slog.Level {
	switch {
	case level <= logging.LevelDebug:
		return slog.LevelDebug
	case level == logging.LevelInfo:
		return slog.LevelInfo
	case level == logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
