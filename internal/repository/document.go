package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/complytrack/complytrack/internal/model"
)

type DocumentRepository interface {
	Create(d *model.Document) error
	All() ([]*model.Document, error)
	DeleteAll() error
}

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(d *model.Document) error {
	query := `INSERT INTO documents (id, name, storage_path, file_size, mime_type, compliance_item_id, uploaded_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		d.ID,
		d.Name,
		d.StoragePath,
		d.FileSize,
		d.MimeType,
		d.ComplianceItemID,
		d.UploadedAt,
	)

	return err
}

func (r *documentRepository) All() ([]*model.Document, error) {
	var docs []*model.Document
	query := `SELECT * FROM documents ORDER BY uploaded_at DESC`

	err := r.db.Select(&docs, query)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *documentRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM documents`)
	return err
}
