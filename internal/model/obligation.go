package model

import (
	"time"
)

// Jurisdiction tiers
const (
	TierFederal = "federal"
	TierState   = "state"
	TierLocal   = "local"
)

// Stored lifecycle states. StatusOverdue is only ever written explicitly;
// the store never recomputes it when a due date passes. The read-time
// notion of "overdue" lives in the schedule package.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

// Obligation is a single trackable compliance requirement: a filing,
// license renewal or tax deadline owed to a federal, state or local
// authority.
type Obligation struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"` // jurisdiction tier
	Category    string    `db:"category"`
	DueDate     time.Time `db:"due_date"`
	Frequency   string    `db:"frequency"` // "Annual", "Quarterly", ... or empty
	Status      string    `db:"status"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ValidTier reports whether t is a known jurisdiction tier.
func ValidTier(t string) bool {
	return t == TierFederal || t == TierState || t == TierLocal
}

// ValidStatus reports whether s is a known stored status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusOverdue
}
