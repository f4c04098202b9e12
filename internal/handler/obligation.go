package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/repository"
	"github.com/complytrack/complytrack/internal/service"
	"github.com/complytrack/complytrack/internal/ui"
	"github.com/complytrack/complytrack/internal/validation"
)

type ObligationHandler struct {
	obligationService *service.ObligationService
}

func NewObligationHandler(obligationService *service.ObligationService) *ObligationHandler {
	return &ObligationHandler{
		obligationService: obligationService,
	}
}

type obligationsData struct {
	Items []*model.Obligation
	Error string
}

func (h *ObligationHandler) ObligationsPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.obligationService.All()
	if err != nil {
		slog.Error("failed to load obligations", "error", err)
		http.Error(w, "Failed to load obligations", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "obligations.html", obligationsData{Items: items})
}

// Create handles the add-obligation form. Status defaults to pending when
// the form omits it; the store writes whatever it is handed.
func (h *ObligationHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	tier := r.FormValue("type")
	category := strings.TrimSpace(r.FormValue("category"))
	frequency := r.FormValue("frequency")
	status := r.FormValue("status")
	description := strings.TrimSpace(r.FormValue("description"))

	if status == "" {
		status = model.StatusPending
	}

	err := validation.ValidateName(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = validation.ValidateTier(tier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = validation.ValidateCategory(category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = validation.ValidateStatus(status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dueDate, err := validation.ParseDueDate(r.FormValue("due_date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.obligationService.Create(service.NewObligation{
		Name:        name,
		Type:        tier,
		Category:    category,
		DueDate:     dueDate,
		Frequency:   frequency,
		Status:      status,
		Description: description,
	})
	if err != nil {
		slog.Error("failed to add obligation", "error", err)
		http.Error(w, "Failed to add obligation", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/obligations", http.StatusSeeOther)
}

// UpdateStatus handles the status toggle form.
func (h *ObligationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	status := r.FormValue("status")

	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	err := validation.ValidateStatus(status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.obligationService.UpdateStatus(id, status)
	if errors.Is(err, repository.ErrObligationNotFound) {
		http.Error(w, "Obligation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update obligation status", "error", err, "id", id)
		http.Error(w, "Failed to update obligation status", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/obligations", http.StatusSeeOther)
}
