// ABOUTME: HTTP server wiring: router, middleware, and JSON envelope helpers
// ABOUTME: Handlers receive their pipelines by injection, no globals
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/rag"
	"github.com/tutorstack/tutor/internal/storage"
)

// Server exposes the tutor API over HTTP.
type Server struct {
	answers  *rag.AnswerPipeline
	quizzes  *rag.QuizPipeline
	docs     *rag.DocPipeline
	store    storage.ObjectStore
	s3Prefix string
	logger   *zap.Logger
}

// New wires a Server from its pipelines and collaborators.
func New(answers *rag.AnswerPipeline, quizzes *rag.QuizPipeline, docs *rag.DocPipeline, store storage.ObjectStore, s3Prefix string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		answers:  answers,
		quizzes:  quizzes,
		docs:     docs,
		store:    store,
		s3Prefix: s3Prefix,
		logger:   logger,
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/chat/", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/quiz/", s.handleQuiz).Methods(http.MethodPost)
	r.HandleFunc("/upload_pdf/", s.handleUploadPDF).Methods(http.MethodPost)
	r.HandleFunc("/equation/", s.handleEquation).Methods(http.MethodPost)
	r.HandleFunc("/upload_file/", s.handleUploadFile).Methods(http.MethodPost)
	r.HandleFunc("/summarize_pdf/", s.handleSummarizePDF).Methods(http.MethodPost)

	return r
}

// requestLogger logs each request with a generated request ID.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.New().String()

		next.ServeHTTP(w, r)

		s.logger.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// recoverer converts panics into the uniform error envelope so nothing
// crosses the API boundary unformatted.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler",
					zap.String("path", r.URL.Path), zap.Any("panic", rec))
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}
