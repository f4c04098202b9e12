package handler

import (
	"log/slog"
	"net/http"

	"github.com/complytrack/complytrack/internal/model"
	"github.com/complytrack/complytrack/internal/service"
	"github.com/complytrack/complytrack/internal/ui"
)

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

type documentRow struct {
	Doc *model.Document
	URL string
}

type documentsData struct {
	Rows []documentRow
}

func (h *DocumentHandler) DocumentsPage(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.All()
	if err != nil {
		slog.Error("failed to load documents", "error", err)
		http.Error(w, "Failed to load documents", http.StatusInternalServerError)
		return
	}

	rows := make([]documentRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, documentRow{
			Doc: d,
			URL: h.documentService.DownloadURL(d),
		})
	}

	ui.Render(w, r, "documents.html", documentsData{Rows: rows})
}
