package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/complytrack/complytrack/internal/db"
	"github.com/complytrack/complytrack/internal/service"
)

// SetupHandler re-initializes the schema and loads the fixed seed
// dataset. Destructive: all existing rows go. Unlike the rest of the
// write surface this one sits behind the session gate even though it is
// an "admin" endpoint; leaving it open would let anyone wipe the data.
type SetupHandler struct {
	db          *sqlx.DB
	driver      string
	seedService *service.SeedService
}

func NewSetupHandler(database *sqlx.DB, driver string, seedService *service.SeedService) *SetupHandler {
	return &SetupHandler{
		db:          database,
		driver:      driver,
		seedService: seedService,
	}
}

func (h *SetupHandler) Setup(w http.ResponseWriter, r *http.Request) {
	err := db.RunMigrations(h.db.DB, h.driver)
	if err != nil {
		slog.Error("setup migration failed", "error", err)
		writeJSONError(w, "Failed to initialize database", http.StatusInternalServerError)
		return
	}

	err = h.seedService.Run()
	if err != nil {
		slog.Error("setup seed failed", "error", err)
		writeJSONError(w, "Failed to initialize database", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Database initialized and seeded successfully",
	})
}
