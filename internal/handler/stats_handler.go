package handler

import (
	"net/http"

	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// StatsHandler serves the admin dashboard summary.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("handler", "stats").Logger(),
	}
}

// Dashboard handles GET /api/admin/stats.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
