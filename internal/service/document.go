package service

import (
	"log/slog"
	"time"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/repository"
	"github.com/complytrack/complytrack/internal/storage"
)

type DocumentService struct {
	repo          repository.DocumentRepository
	storage       storage.Storage
	presignExpiry time.Duration
}

func NewDocumentService(repo repository.DocumentRepository, store storage.Storage, presignExpiry time.Duration) *DocumentService {
	return &DocumentService{
		repo:          repo,
		storage:       store,
		presignExpiry: presignExpiry,
	}
}

// All returns every document, newest upload first.
func (s *DocumentService) All() ([]*model.Document, error) {
	return s.repo.All()
}

// DownloadURL returns a presigned link for the document, or "" when object
// storage is not configured or presigning fails. The listing page renders
// a disabled action in that case.
func (s *DocumentService) DownloadURL(d *model.Document) string {
	if s.storage == nil || d.StoragePath == "" {
		return ""
	}

	url, err := s.storage.PresignedURL(d.StoragePath, s.presignExpiry)
	if err != nil {
		slog.Error("failed to presign document URL", "error", err, "document_id", d.ID)
		return ""
	}

	return url
}
