package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
)

// Ensure LoggingDocumentService implements webclip.DocumentService.
var _ webclip.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with write-path logging.
type LoggingDocumentService struct {
	next   webclip.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next webclip.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped service and logs the write.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *webclip.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("document insert",
			"id", doc.ID,
			"title", doc.Title,
			"nlp_processed", doc.NLPProcessed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (*webclip.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocuments delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter webclip.DocumentFilter) ([]*webclip.Document, error) {
	return s.next.FindDocuments(ctx, filter)
}

// UpdateDocument delegates to the wrapped service and logs the write.
func (s *LoggingDocumentService) UpdateDocument(ctx context.Context, id string, upd webclip.DocumentUpdate) (doc *webclip.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("document update",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateDocument(ctx, id, upd)
}

// DeleteDocument delegates to the wrapped service and logs the write.
func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("document delete",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocument(ctx, id)
}
