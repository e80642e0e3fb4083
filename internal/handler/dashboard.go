// internal/handler/dashboard.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/emateapp/emate/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type DashboardHandler struct {
	dashboards *service.DashboardService
}

func NewDashboardHandler(dashboards *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// GetDashboard returns the consolidated landing-page payload.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	summary, err := h.dashboards.ComputeDashboard(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard assembly error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
