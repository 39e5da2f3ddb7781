package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/panagiotisMouz/Football-Stats/internal/usecase"
)

func (h *Handler) GetGlobalStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGlobalStats")
	defer span.End()

	stats, err := h.statsService.GetGlobalStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get global stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, globalStatsToDTO(stats))
}

func (h *Handler) GetYearlyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetYearlyStats")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("year"))
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: year must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	stats, err := h.statsService.GetYearlyStats(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "get yearly stats failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, yearlyStatsToDTO(stats))
}

func (h *Handler) RunIngestionJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunIngestionJob")
	defer span.End()

	reports, err := h.ingestionService.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "ingestion job failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"phases": reports})
}
