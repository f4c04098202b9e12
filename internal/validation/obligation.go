package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/complytrack/complytrack/internal/model"
)

// DueDateLayout is the wire format for due dates (HTML date inputs).
const DueDateLayout = "2006-01-02"

// ValidateName validates an obligation name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 500 {
		return errors.New("name is too long (max 500 characters)")
	}

	return nil
}

// ValidateCategory validates an obligation category
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errors.New("category is required")
	}
	return nil
}

// ValidateTier validates a jurisdiction tier
func ValidateTier(tier string) error {
	if tier == "" {
		return errors.New("type is required")
	}
	if !model.ValidTier(tier) {
		return errors.New("type must be federal, state or local")
	}
	return nil
}

// ValidateStatus validates a stored status value
func ValidateStatus(status string) error {
	if status == "" {
		return errors.New("status is required")
	}
	if !model.ValidStatus(status) {
		return errors.New("status must be pending, completed or overdue")
	}
	return nil
}

// ParseDueDate parses a form due date (YYYY-MM-DD).
func ParseDueDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.New("due date is required")
	}

	t, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, errors.New("due date must be YYYY-MM-DD")
	}

	return t, nil
}
