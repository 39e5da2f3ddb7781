package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/panagiotisMouz/Football-Stats/internal/etl"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/logging"
)

// IngestionService runs the CSV load pipeline against the configured data
// directory. It is invoked once at startup (or via the internal job route)
// and never concurrently with itself.
type IngestionService struct {
	pipeline *etl.Pipeline
	stats    *StatsService
	dataDir  string
	logger   *logging.Logger
}

func NewIngestionService(pipeline *etl.Pipeline, stats *StatsService, dataDir string, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		pipeline: pipeline,
		stats:    stats,
		dataDir:  dataDir,
		logger:   logger,
	}
}

func (s *IngestionService) Run(ctx context.Context) ([]etl.PhaseReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Run")
	defer span.End()

	if info, err := os.Stat(s.dataDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: data directory %s", ErrDependencyUnavailable, s.dataDir)
	}

	reports, err := s.pipeline.Run(ctx, s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("run ingestion: %w", err)
	}

	if s.stats != nil {
		s.stats.InvalidateGlobalStats(ctx)
	}

	for _, report := range reports {
		if report.Err != nil {
			s.logger.WarnContext(ctx, "ingestion phase incomplete",
				"phase", report.Phase, "error", report.Err)
		}
	}
	return reports, nil
}
