package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/repository"
)

type ObligationService struct {
	repo repository.ObligationRepository
}

func NewObligationService(repo repository.ObligationRepository) *ObligationService {
	return &ObligationService{repo: repo}
}

// NewObligation carries the writable subset of an obligation. Status is
// taken verbatim from the caller; the HTTP layer defaults it to pending
// when the form leaves it blank.
type NewObligation struct {
	Name        string
	Type        string
	Category    string
	DueDate     time.Time
	Frequency   string
	Status      string
	Description string
}

// Create inserts the obligation, assigning id and both timestamps, and
// returns the stored record.
func (s *ObligationService) Create(in NewObligation) (*model.Obligation, error) {
	now := time.Now()
	o := &model.Obligation{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Category:    in.Category,
		DueDate:     in.DueDate,
		Frequency:   in.Frequency,
		Status:      in.Status,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(o)
	if err != nil {
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}

	return o, nil
}

// All returns every obligation, soonest due first.
func (s *ObligationService) All() ([]*model.Obligation, error) {
	return s.repo.All()
}

// UpdateStatus writes the new stored status. Returns
// repository.ErrObligationNotFound for an unknown id.
func (s *ObligationService) UpdateStatus(id, status string) (*model.Obligation, error) {
	return s.repo.UpdateStatus(id, status)
}
