package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/pipeline"
)

// ShutdownTimeout is the time to wait for in-flight requests on Close.
const ShutdownTimeout = 5 * time.Second

// Server serves the webclip HTTP API: the ingestion entry point, the
// server-side capture endpoint, and the document endpoints consumed by the
// dashboard. Fields must be set before calling Open.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	// Bind address, e.g. ":3001".
	Addr string

	Structurer *pipeline.Structurer
	Capturer   *pipeline.Capturer
	Documents  webclip.DocumentService

	// Limiter throttles the ingestion routes. Nil disables throttling.
	Limiter *rate.Limiter

	Logger *slog.Logger
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	s := &Server{server: &http.Server{}}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Group(func(r chi.Router) {
		r.Use(s.throttle)
		r.Post("/receive_data", s.handleReceiveData)
		r.Post("/capture", s.handleCapture)
	})

	r.Post("/analyze_image", s.handleAnalyzeImage)
	r.Get("/health", s.handleHealth)

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", s.handleDocumentList)
		r.Get("/{id}", s.handleDocumentGet)
		r.Patch("/{id}", s.handleDocumentUpdate)
		r.Delete("/{id}", s.handleDocumentDelete)
	})

	s.router = r
	s.server.Handler = r
	return s
}

// Handler returns the server's root handler, for use in tests.
func (s *Server) Handler() http.Handler { return s.router }

// Open begins listening on the bind address. Returns once the listener is
// established; the server runs in a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger().Error("http server terminated", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is listening on.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// throttle applies the shared token bucket to ingestion routes.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter != nil && !s.Limiter.Allow() {
			s.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cors allows the browser extension and dashboard to call the API from any
// origin, matching the permissive policy of the capture clients.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	webclip.ECONFLICT:    http.StatusConflict,
	webclip.EINVALID:     http.StatusBadRequest,
	webclip.ENOTFOUND:    http.StatusNotFound,
	webclip.EUNAVAILABLE: http.StatusServiceUnavailable,
	webclip.EINTERNAL:    http.StatusInternalServerError,
}

// Error writes an application error as a JSON response. Internal errors are
// logged and their details withheld from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := webclip.ErrorCode(err), webclip.ErrorMessage(err)
	if code == webclip.EINTERNAL {
		s.logger().Error("internal error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	status, ok := codes[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	s.writeError(w, status, message)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger().Error("response encoding failed", "err", err)
	}
}
