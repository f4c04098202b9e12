package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/complytrack/complytrack/internal/service"
	"github.com/complytrack/complytrack/internal/ui"
)

type GuideHandler struct {
	guideService *service.GuideService
}

func NewGuideHandler(guideService *service.GuideService) *GuideHandler {
	return &GuideHandler{
		guideService: guideService,
	}
}

type guideData struct {
	Pages []*service.GuidePage
}

type guidePageData struct {
	Page *service.GuidePage
}

func (h *GuideHandler) GuidePage(w http.ResponseWriter, r *http.Request) {
	pages, err := h.guideService.Pages()
	if err != nil {
		slog.Error("failed to load guide pages", "error", err)
		http.Error(w, "Failed to load guide", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "guide.html", guideData{Pages: pages})
}

func (h *GuideHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("page")

	page, err := h.guideService.Page(slug)
	if errors.Is(err, service.ErrGuidePageNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load guide page", "error", err, "page", slug)
		http.Error(w, "Failed to load guide", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "guide_page.html", guidePageData{Page: page})
}
