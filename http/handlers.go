package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fwojciec/webclip"
)

// maxCaptureBytes caps the size of an ingestion request body.
const maxCaptureBytes = 12 << 20

// handleReceiveData is the ingestion entry point. It accepts a plain-text
// body or a JSON object with a "text" (or "content") field, structures the
// capture, persists it, and returns the structured document.
func (s *Server) handleReceiveData(w http.ResponseWriter, r *http.Request) {
	text, err := readCaptureText(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.structureAndStore(w, r, text)
}

// handleCapture performs server-side capture: it fetches the requested
// page, extracts its readable content, and feeds the result through the
// same structuring path as a client-submitted capture.
func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxCaptureBytes)).Decode(&req); err != nil {
		s.Error(w, r, webclip.Errorf(webclip.EINVALID, "invalid capture request: %v", err))
		return
	}

	text, err := s.Capturer.CaptureText(r.Context(), req.URL)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.structureAndStore(w, r, text)
}

// structureAndStore runs the pipeline and persists the result. A storage
// failure is reported distinctly from a structuring failure: the former is
// a server error, the latter a client error.
func (s *Server) structureAndStore(w http.ResponseWriter, r *http.Request, text string) {
	doc, err := s.Structurer.Structure(r.Context(), text)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	// The stored row keeps a longer raw excerpt than the response.
	row := *doc
	row.RawExcerpt = webclip.Truncate(text, webclip.StoredExcerptLen)
	if err := s.Documents.CreateDocument(r.Context(), &row); err != nil {
		s.logger().Error("document insert failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "structuring succeeded but the document could not be saved")
		return
	}

	doc.ID = row.ID
	s.writeJSON(w, http.StatusOK, doc)
}

// readCaptureText extracts the raw capture text from the request body.
func readCaptureText(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCaptureBytes))
	if err != nil {
		return "", webclip.Errorf(webclip.EINVALID, "unreadable request body: %v", err)
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Text    string `json:"text"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return "", webclip.Errorf(webclip.EINVALID, "invalid JSON body: %v", err)
		}
		if req.Text != "" {
			return req.Text, nil
		}
		return req.Content, nil
	}

	return string(body), nil
}

// handleAnalyzeImage is a placeholder kept for the dashboard's reverse
// image search; it returns fixed keywords until real image analysis exists.
func (s *Server) handleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"keywords": []string{"technology", "web", "digital", "content"},
		"message":  "image analysis not yet implemented",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDocumentList returns stored documents ordered by capture time
// descending, paginated via limit/offset query parameters.
func (s *Server) handleDocumentList(w http.ResponseWriter, r *http.Request) {
	filter := webclip.DocumentFilter{Limit: 50}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(w, r, webclip.Errorf(webclip.EINVALID, "invalid limit %q", v))
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(w, r, webclip.Errorf(webclip.EINVALID, "invalid offset %q", v))
			return
		}
		filter.Offset = n
	}
	if v := r.URL.Query().Get("source_url"); v != "" {
		filter.SourceURL = &v
	}

	docs, err := s.Documents.FindDocuments(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleDocumentGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Documents.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDocumentUpdate(w http.ResponseWriter, r *http.Request) {
	var upd webclip.DocumentUpdate
	if err := json.NewDecoder(io.LimitReader(r.Body, maxCaptureBytes)).Decode(&upd); err != nil {
		s.Error(w, r, webclip.Errorf(webclip.EINVALID, "invalid update body: %v", err))
		return
	}

	doc, err := s.Documents.UpdateDocument(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDocumentDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Documents.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
