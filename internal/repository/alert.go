package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/complytrack/complytrack/internal/model"
)

// AlertRepository is append-only: alerts are never updated or deleted
// individually, only cleared wholesale by the reseed flow.
type AlertRepository interface {
	Create(a *model.Alert) error
	Recent(limit int) ([]*model.Alert, error)
	DeleteAll() error
}

type alertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(a *model.Alert) error {
	query := `INSERT INTO alerts (id, title, description, type, source, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		a.ID,
		a.Title,
		a.Description,
		a.Type,
		a.Source,
		a.CreatedAt,
	)

	return err
}

// Recent returns the newest alerts first, at most limit of them.
func (r *alertRepository) Recent(limit int) ([]*model.Alert, error) {
	var alerts []*model.Alert
	query := `SELECT * FROM alerts ORDER BY created_at DESC LIMIT $1`

	err := r.db.Select(&alerts, query, limit)
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM alerts`)
	return err
}
