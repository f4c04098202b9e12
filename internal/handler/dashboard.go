package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/schedule"
	"github.com/complytrack/complytrack/internal/service"
	"github.com/complytrack/complytrack/internal/ui"
)

type DashboardHandler struct {
	obligationService *service.ObligationService
	alertService      *service.AlertService
}

func NewDashboardHandler(obligationService *service.ObligationService, alertService *service.AlertService) *DashboardHandler {
	return &DashboardHandler{
		obligationService: obligationService,
		alertService:      alertService,
	}
}

type dashboardData struct {
	Items   []*model.Obligation
	Alerts  []*model.Alert
	Buckets schedule.Buckets
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.obligationService.All()
	if err != nil {
		slog.Error("failed to load obligations", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	alerts, err := h.alertService.Recent()
	if err != nil {
		slog.Error("failed to load alerts", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "dashboard.html", dashboardData{
		Items:   items,
		Alerts:  alerts,
		Buckets: schedule.Bucketize(items, time.Now()),
	})
}
