package webclip

import (
	"context"
	"time"
)

// Document is the structured record produced from a single raw capture.
// It is constructed once by the structuring pipeline, immutable afterwards,
// and handed to a DocumentService for storage.
type Document struct {
	ID             string    `json:"id,omitempty"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Keywords       []string  `json:"keywords"`
	Emotions       []string  `json:"emotions"`
	SentimentScore *float64  `json:"sentiment_score,omitempty"`
	SourceURL      string    `json:"source_url,omitempty"`
	MediaURLs      []string  `json:"media_urls"`
	CapturedAt     time.Time `json:"captured_at"`
	Embedding      []float64 `json:"embedding,omitempty"`
	NLPProcessed   bool      `json:"nlp_processed"`
	RawExcerpt     string    `json:"raw_excerpt,omitempty"`

	// ContentHash is assigned by the storage layer for duplicate detection.
	ContentHash string `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.CapturedAt.IsZero() {
		return Errorf(EINVALID, "document capture time required")
	}
	return nil
}

// DocumentService represents a service for managing stored documents.
// The structuring pipeline only needs CreateDocument; the remaining
// operations serve the dashboard collaborator.
type DocumentService interface {
	// CreateDocument persists a new document and assigns its ID.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered by
	// capture time descending.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if the document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID           *string `json:"id"`
	SourceURL    *string `json:"source_url"`
	NLPProcessed *bool   `json:"nlp_processed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Title    *string   `json:"title"`
	Summary  *string   `json:"summary"`
	Keywords *[]string `json:"keywords"`
	Emotions *[]string `json:"emotions"`
}
