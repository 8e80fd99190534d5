package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/webclip"
)

// Compile-time interface verification.
var _ webclip.DocumentService = (*DocumentService)(nil)

// DocumentService implements webclip.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashDocument computes xxHash over the text fields that identify a capture
// and returns it as a hex string. Used for duplicate detection downstream.
func hashDocument(doc *webclip.Document) string {
	h := xxhash.New()
	_, _ = h.WriteString(doc.Title)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(doc.Summary)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(doc.RawExcerpt)
	return hex.EncodeToString(h.Sum(nil))
}

// CreateDocument persists a new document and assigns its ID.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *webclip.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ContentHash = hashDocument(doc)

	keywords, err := encodeJSON(doc.Keywords)
	if err != nil {
		return err
	}
	emotions, err := encodeJSON(doc.Emotions)
	if err != nil {
		return err
	}
	media, err := encodeJSON(doc.MediaURLs)
	if err != nil {
		return err
	}

	var score sql.NullFloat64
	if doc.SentimentScore != nil {
		score = sql.NullFloat64{Float64: *doc.SentimentScore, Valid: true}
	}
	var embedding sql.NullString
	if doc.Embedding != nil {
		enc, err := encodeJSON(doc.Embedding)
		if err != nil {
			return err
		}
		embedding = sql.NullString{String: enc, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, summary, keywords, emotions, sentiment_score,
			source_url, media_urls, captured_at, embedding, nlp_processed, raw_excerpt, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, doc.Summary, keywords, emotions, score,
		doc.SourceURL, media, doc.CapturedAt.UTC().Format(time.RFC3339), embedding,
		doc.NLPProcessed, doc.RawExcerpt, doc.ContentHash)

	return err
}

// documentColumns is the SELECT column list shared by the read paths.
const documentColumns = `id, title, summary, keywords, emotions, sentiment_score,
	source_url, media_urls, captured_at, embedding, nlp_processed, raw_excerpt, content_hash`

// scanDocument reads one row into a document.
func scanDocument(scan func(dest ...any) error) (*webclip.Document, error) {
	var doc webclip.Document
	var keywords, emotions, media, capturedAt string
	var score sql.NullFloat64
	var embedding sql.NullString

	if err := scan(&doc.ID, &doc.Title, &doc.Summary, &keywords, &emotions, &score,
		&doc.SourceURL, &media, &capturedAt, &embedding, &doc.NLPProcessed,
		&doc.RawExcerpt, &doc.ContentHash); err != nil {
		return nil, err
	}

	var err error
	if doc.Keywords, err = decodeStrings(keywords, "keywords"); err != nil {
		return nil, err
	}
	if doc.Emotions, err = decodeStrings(emotions, "emotions"); err != nil {
		return nil, err
	}
	if doc.MediaURLs, err = decodeStrings(media, "media_urls"); err != nil {
		return nil, err
	}
	if doc.CapturedAt, err = parseRFC3339(capturedAt, "captured_at"); err != nil {
		return nil, err
	}
	if score.Valid {
		doc.SentimentScore = &score.Float64
	}
	if embedding.Valid {
		if doc.Embedding, err = decodeFloats(embedding.String, "embedding"); err != nil {
			return nil, err
		}
	}

	return &doc, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*webclip.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, webclip.Errorf(webclip.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter webclip.DocumentFilter) ([]*webclip.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.NLPProcessed != nil {
		query.WriteString(" AND nlp_processed = ?")
		args = append(args, *filter.NLPProcessed)
	}

	// The dashboard reads captures newest first.
	query.WriteString(" ORDER BY captured_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT; -1 means unlimited.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*webclip.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd webclip.DocumentUpdate) (*webclip.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		doc.Title = webclip.Truncate(*upd.Title, webclip.MaxTitleLen)
	}
	if upd.Summary != nil {
		doc.Summary = *upd.Summary
	}
	if upd.Keywords != nil {
		doc.Keywords = *upd.Keywords
	}
	if upd.Emotions != nil {
		doc.Emotions = *upd.Emotions
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	keywords, err := encodeJSON(doc.Keywords)
	if err != nil {
		return nil, err
	}
	emotions, err := encodeJSON(doc.Emotions)
	if err != nil {
		return nil, err
	}
	doc.ContentHash = hashDocument(doc)

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, summary = ?, keywords = ?, emotions = ?, content_hash = ?
		WHERE id = ?
	`, doc.Title, doc.Summary, keywords, emotions, doc.ContentHash, id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return webclip.Errorf(webclip.ENOTFOUND, "document not found")
	}

	return nil
}
