package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/complytrack/complytrack/internal/model"
)

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) PresignedURL(path string, expiry time.Duration) (string, error) {
	return f.url, f.err
}

func TestDownloadURLWithoutStorage(t *testing.T) {
	svc := NewDocumentService(nil, nil, time.Hour)

	doc := &model.Document{ID: "d1", StoragePath: "documents/a.pdf"}
	assert.Empty(t, svc.DownloadURL(doc))
}

func TestDownloadURLEmptyPath(t *testing.T) {
	svc := NewDocumentService(nil, &fakeStorage{url: "https://example.com/x"}, time.Hour)

	doc := &model.Document{ID: "d1"}
	assert.Empty(t, svc.DownloadURL(doc))
}

func TestDownloadURLPresigned(t *testing.T) {
	svc := NewDocumentService(nil, &fakeStorage{url: "https://example.com/signed"}, time.Hour)

	doc := &model.Document{ID: "d1", StoragePath: "documents/a.pdf"}
	assert.Equal(t, "https://example.com/signed", svc.DownloadURL(doc))
}

func TestDownloadURLPresignFailure(t *testing.T) {
	svc := NewDocumentService(nil, &fakeStorage{err: errors.New("boom")}, time.Hour)

	doc := &model.Document{ID: "d1", StoragePath: "documents/a.pdf"}
	assert.Empty(t, svc.DownloadURL(doc))
}
