package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/complytrack/complytrack/internal/model"
)

var (
	ErrObligationNotFound = errors.New("obligation not found")
)

type ObligationRepository interface {
	Create(o *model.Obligation) error
	ByID(id string) (*model.Obligation, error)
	All() ([]*model.Obligation, error)
	UpdateStatus(id, status string) (*model.Obligation, error)
	DeleteAll() error
}

type obligationRepository struct {
	db *sqlx.DB
}

func NewObligationRepository(db *sqlx.DB) ObligationRepository {
	return &obligationRepository{db: db}
}

func (r *obligationRepository) Create(o *model.Obligation) error {
	query := `INSERT INTO compliance_items (id, name, type, category, due_date, frequency, status, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		o.ID,
		o.Name,
		o.Type,
		o.Category,
		o.DueDate,
		o.Frequency,
		o.Status,
		o.Description,
		o.CreatedAt,
		o.UpdatedAt,
	)

	return err
}

func (r *obligationRepository) ByID(id string) (*model.Obligation, error) {
	o := &model.Obligation{}
	query := `SELECT * FROM compliance_items WHERE id = $1`

	err := r.db.Get(o, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrObligationNotFound
	}

	return o, err
}

// All returns every obligation ascending by due date. No pagination:
// volume is tens of rows.
func (r *obligationRepository) All() ([]*model.Obligation, error) {
	var items []*model.Obligation
	query := `SELECT * FROM compliance_items ORDER BY due_date ASC`

	err := r.db.Select(&items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateStatus sets the stored status and refreshes updated_at. The status
// is written verbatim; marking an item overdue is always an explicit write,
// never something the store derives from the due date.
func (r *obligationRepository) UpdateStatus(id, status string) (*model.Obligation, error) {
	query := `UPDATE compliance_items SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, status, time.Now(), id)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrObligationNotFound
	}

	return r.ByID(id)
}

// DeleteAll wipes the table. Only the destructive reseed flow calls this.
func (r *obligationRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM compliance_items`)
	return err
}
