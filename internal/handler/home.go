package handler

import (
	"net/http"

	"github.com/complytrack/complytrack/internal/ui"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	// content type must go out with the status line; headers set after
	// WriteHeader are dropped
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, "notfound.html", nil)
}
