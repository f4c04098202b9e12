package model

import (
	"time"
)

// Alert kinds
const (
	AlertKindNew      = "new"
	AlertKindUpdate   = "update"
	AlertKindDeadline = "deadline"
)

// Alert is a short-lived notice from an issuing authority. Alerts are
// immutable after creation and only ever read newest-first.
type Alert struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Type        string    `db:"type"` // alert kind
	Source      string    `db:"source"`
	CreatedAt   time.Time `db:"created_at"`
}
