package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/repository"
	"github.com/complytrack/complytrack/internal/schedule"
)

// SeedService loads the fixed demo dataset: the standing federal and
// state obligations of a single-state LLC plus a few sample alerts. It is
// destructive: every run clears all three tables first. Nothing in normal
// operation calls it.
type SeedService struct {
	obligations      repository.ObligationRepository
	alerts           repository.AlertRepository
	documents        repository.DocumentRepository
	anniversaryMonth int
}

func NewSeedService(
	obligations repository.ObligationRepository,
	alerts repository.AlertRepository,
	documents repository.DocumentRepository,
	anniversaryMonth int,
) *SeedService {
	return &SeedService{
		obligations:      obligations,
		alerts:           alerts,
		documents:        documents,
		anniversaryMonth: anniversaryMonth,
	}
}

type seedObligation struct {
	name        string
	tier        string
	category    string
	dueDate     time.Time
	frequency   string
	description string
}

type seedAlert struct {
	title       string
	description string
	kind        string
	source      string
}

// Run wipes and reloads the dataset. Documents are cleared first because
// they reference compliance items.
func (s *SeedService) Run() error {
	err := s.documents.DeleteAll()
	if err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}
	err = s.alerts.DeleteAll()
	if err != nil {
		return fmt.Errorf("failed to clear alerts: %w", err)
	}
	err = s.obligations.DeleteAll()
	if err != nil {
		return fmt.Errorf("failed to clear obligations: %w", err)
	}

	// The two anniversary filings track the configured month; everything
	// else is pinned to the statutory calendar.
	anniversary := schedule.AnniversaryDueDate(s.anniversaryMonth, time.Now().Year())

	items := []seedObligation{
		{
			name:        "Annual List of Managers/Members",
			tier:        model.TierState,
			category:    "Corporate Filing",
			dueDate:     anniversary,
			frequency:   "Annual",
			description: "Required annual filing listing all managers and members of the LLC",
		},
		{
			name:        "State Business License Renewal",
			tier:        model.TierState,
			category:    "Business License",
			dueDate:     anniversary,
			frequency:   "Annual",
			description: "Annual renewal of the state business license",
		},
		{
			name:        "State Commerce Tax",
			tier:        model.TierState,
			category:    "Tax Filing",
			dueDate:     date(2025, 5, 15),
			frequency:   "Annual",
			description: "Due if annual gross revenue exceeds $4M",
		},
		{
			name:        "State Unemployment Insurance Tax",
			tier:        model.TierState,
			category:    "Payroll Tax",
			dueDate:     date(2025, 1, 31),
			frequency:   "Quarterly",
			description: "Quarterly unemployment insurance tax filing (if employees)",
		},
		{
			name:        "State Modified Business Tax",
			tier:        model.TierState,
			category:    "Payroll Tax",
			dueDate:     date(2025, 1, 31),
			frequency:   "Quarterly",
			description: "Quarterly MBT filing (if employees)",
		},
		{
			name:        "Federal Income Tax Return (Form 1065)",
			tier:        model.TierFederal,
			category:    "Tax Filing",
			dueDate:     date(2025, 3, 15),
			frequency:   "Annual",
			description: "Partnership tax return (if LLC elects partnership taxation)",
		},
		{
			name:        "Federal Income Tax Return (Form 1120)",
			tier:        model.TierFederal,
			category:    "Tax Filing",
			dueDate:     date(2025, 4, 15),
			frequency:   "Annual",
			description: "Corporate tax return (if LLC elects corporate taxation)",
		},
		{
			name:        "Quarterly Federal Tax Return (Form 941)",
			tier:        model.TierFederal,
			category:    "Payroll Tax",
			dueDate:     date(2025, 1, 31),
			frequency:   "Quarterly",
			description: "Quarterly payroll tax return (if employees)",
		},
		{
			name:        "Federal Unemployment Tax (Form 940)",
			tier:        model.TierFederal,
			category:    "Payroll Tax",
			dueDate:     date(2025, 1, 31),
			frequency:   "Annual",
			description: "Annual federal unemployment tax return (if employees)",
		},
		{
			name:        "EEO Workplace Poster Update",
			tier:        model.TierFederal,
			category:    "Compliance",
			dueDate:     date(2025, 1, 31),
			frequency:   "Annual",
			description: "Ensure current Equal Employment Opportunity posters are displayed",
		},
		{
			name:        "OSHA Annual Safety Training",
			tier:        model.TierFederal,
			category:    "Safety",
			dueDate:     date(2025, 6, 30),
			frequency:   "Annual",
			description: "Annual safety training requirements for all employees",
		},
	}

	now := time.Now()
	for _, item := range items {
		o := &model.Obligation{
			ID:          uuid.New().String(),
			Name:        item.name,
			Type:        item.tier,
			Category:    item.category,
			DueDate:     item.dueDate,
			Frequency:   item.frequency,
			Status:      model.StatusPending,
			Description: item.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err = s.obligations.Create(o)
		if err != nil {
			return fmt.Errorf("failed to seed obligation %q: %w", item.name, err)
		}
	}

	alerts := []seedAlert{
		{
			title:       "IRS Form 941 Due Soon",
			description: "Quarterly payroll tax return due January 31, 2025",
			kind:        model.AlertKindDeadline,
			source:      "IRS.gov",
		},
		{
			title:       "Annual List Reminder",
			description: "Annual List of Managers/Members due by end of anniversary month",
			kind:        model.AlertKindDeadline,
			source:      "Secretary of State",
		},
		{
			title:       "OSHA Safety Poster Update",
			description: "New workplace safety poster requirements effective 2025",
			kind:        model.AlertKindUpdate,
			source:      "OSHA.gov",
		},
	}

	for _, a := range alerts {
		alert := &model.Alert{
			ID:          uuid.New().String(),
			Title:       a.title,
			Description: a.description,
			Type:        a.kind,
			Source:      a.source,
			CreatedAt:   time.Now(),
		}
		err = s.alerts.Create(alert)
		if err != nil {
			return fmt.Errorf("failed to seed alert %q: %w", a.title, err)
		}
	}

	return nil
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
