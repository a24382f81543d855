package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	services "mm-server/service"
	"mm-server/util"
)

type DashboardHandler struct {
	profileService *services.ProfileService
}

func NewDashboardHandler(profileService *services.ProfileService) *DashboardHandler {
	return &DashboardHandler{profileService: profileService}
}

// GetDashboardStats handles GET /v1/dashboard
func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.profileService.GetDashboardStats(sessionToken(r))
	if err != nil {
		if errors.Is(err, services.ErrNoClientID) {
			writeError(w, http.StatusUnauthorized, "Login required")
			return
		}
		slog.Error("[DashboardHandler] stats fetch failed", "err", err)
		writeError(w, http.StatusBadGateway, "Stats backend unavailable")
		return
	}

	writeData(w, stats)
}

// GetDashboardChart handles GET /v1/dashboard/chart, answering an HTML page
// with the counters rendered as a bar chart.
func (h *DashboardHandler) GetDashboardChart(w http.ResponseWriter, r *http.Request) {
	stats, err := h.profileService.GetDashboardStats(sessionToken(r))
	if err != nil {
		if errors.Is(err, services.ErrNoClientID) {
			writeError(w, http.StatusUnauthorized, "Login required")
			return
		}
		slog.Error("[DashboardHandler] stats fetch failed", "err", err)
		writeError(w, http.StatusBadGateway, "Stats backend unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderStatsChart(w, *stats); err != nil {
		slog.Error("[DashboardHandler] chart render failed", "err", err)
	}
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
