package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/repository"
)

// RecentAlertLimit caps the rolling alert feed.
const RecentAlertLimit = 10

type AlertService struct {
	repo repository.AlertRepository
}

func NewAlertService(repo repository.AlertRepository) *AlertService {
	return &AlertService{repo: repo}
}

// Add appends an alert. Alerts are immutable once written.
func (s *AlertService) Add(title, description, kind, source string) (*model.Alert, error) {
	a := &model.Alert{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Type:        kind,
		Source:      source,
		CreatedAt:   time.Now(),
	}

	err := s.repo.Create(a)
	if err != nil {
		return nil, fmt.Errorf("failed to add alert: %w", err)
	}

	return a, nil
}

// Recent returns the newest alerts, at most RecentAlertLimit.
func (s *AlertService) Recent() ([]*model.Alert, error) {
	return s.repo.Recent(RecentAlertLimit)
}
