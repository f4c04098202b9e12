package routes

import (
	"net/http"

	"github.com/complytrack/complytrack/internal/app"
	"github.com/complytrack/complytrack/internal/handler"
	"github.com/complytrack/complytrack/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(a.AuthService)
	dashboard := handler.NewDashboardHandler(a.ObligationService, a.AlertService)
	obligation := handler.NewObligationHandler(a.ObligationService)
	document := handler.NewDocumentHandler(a.DocumentService)
	guide := handler.NewGuideHandler(a.GuideService)
	setup := handler.NewSetupHandler(a.DB, a.Cfg.DBDriver, a.SeedService)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// Pages (session required)
	mux.HandleFunc("GET /{$}", middleware.RequireAuth(dashboard.DashboardPage))
	mux.HandleFunc("GET /obligations", middleware.RequireAuth(obligation.ObligationsPage))
	mux.HandleFunc("GET /documents", middleware.RequireAuth(document.DocumentsPage))
	mux.HandleFunc("GET /guide", middleware.RequireAuth(guide.GuidePage))
	mux.HandleFunc("GET /guide/{page}", middleware.RequireAuth(guide.ShowPage))

	// Write endpoints (session required; anonymous callers are redirected
	// to /login, same as pages, for compatibility with the form-posting UI)
	mux.HandleFunc("POST /api/obligations", middleware.RequireAuth(obligation.Create))
	mux.HandleFunc("POST /api/obligations/status", middleware.RequireAuth(obligation.UpdateStatus))
	mux.HandleFunc("POST /api/setup", middleware.RequireAuth(setup.Setup))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(a.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(a.AuthService),
		middleware.WithURLPath,
	)

	return h
}
