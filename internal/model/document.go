package model

import (
	"database/sql"
	"time"
)

// Document is a stored compliance document. There is no upload surface
// yet; records exist for listing and (when object storage is configured)
// presigned downloads.
type Document struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	StoragePath      string         `db:"storage_path"`
	FileSize         int64          `db:"file_size"`
	MimeType         string         `db:"mime_type"`
	ComplianceItemID sql.NullString `db:"compliance_item_id"` // optional back-reference
	UploadedAt       time.Time      `db:"uploaded_at"`
}
