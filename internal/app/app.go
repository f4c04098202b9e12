package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/complytrack/complytrack/internal/config"
	"github.com/complytrack/complytrack/internal/db"
	"github.com/complytrack/complytrack/internal/repository"
	"github.com/complytrack/complytrack/internal/service"
	"github.com/complytrack/complytrack/internal/storage"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	ObligationService *service.ObligationService
	AlertService      *service.AlertService
	DocumentService   *service.DocumentService
	SeedService       *service.SeedService
	GuideService      *service.GuideService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	obligationRepository := repository.NewObligationRepository(database)
	alertRepository := repository.NewAlertRepository(database)
	documentRepository := repository.NewDocumentRepository(database)

	// Storage (optional; nil when no bucket is configured)
	documentStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(cfg.AccessCode, cfg.SessionExpiry, cfg.IsProduction())
	obligationService := service.NewObligationService(obligationRepository)
	alertService := service.NewAlertService(alertRepository)
	documentService := service.NewDocumentService(documentRepository, documentStorage, cfg.S3PresignExpiry)
	seedService := service.NewSeedService(obligationRepository, alertRepository, documentRepository, cfg.AnniversaryMonth)
	guideService := service.NewGuideService(cfg.ContentPath)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       authService,
		ObligationService: obligationService,
		AlertService:      alertService,
		DocumentService:   documentService,
		SeedService:       seedService,
		GuideService:      guideService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
