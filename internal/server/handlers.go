// ABOUTME: HTTP handlers for the tutor API endpoints
// ABOUTME: Input errors are 400, upstream failures 500, all JSON-enveloped
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/ingest"
	"github.com/tutorstack/tutor/internal/models"
)

// maxUploadSize bounds multipart uploads (32 MiB).
const maxUploadSize = 32 << 20

type promptRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the Tutor API",
		"endpoints": map[string]string{
			"POST /chat/":          "Submit prompt to chat system",
			"POST /quiz/":          "Generate quiz questions",
			"POST /upload_pdf/":    "Convert a PDF into a structured JSON outline",
			"POST /equation/":      "Look up a curve equation",
			"POST /upload_file/":   "Upload a file to document storage",
			"POST /summarize_pdf/": "Ask a question about an uploaded PDF",
		},
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "No input provided")
		return
	}

	answer, err := s.answers.Answer(r.Context(), req.Prompt)
	if err != nil {
		s.logger.Error("chat pipeline failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"response": answer,
	})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "No input provided")
		return
	}

	result := s.quizzes.GenerateQuiz(r.Context(), req.Prompt)
	switch result.Outcome {
	case models.QuizSuccess:
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"mcqs":   result.MCQs,
		})
	case models.QuizNoContext:
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "success",
			"mcqs":    []models.MCQ{},
			"message": "no relevant content found for topic: " + result.Topic,
		})
	case models.QuizExhausted:
		s.logger.Warn("quiz generation exhausted retries",
			zap.String("topic", result.Topic), zap.Error(result.Err))
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "success",
			"mcqs":    []models.MCQ{},
			"message": "no valid MCQs generated, try modifying the topic",
		})
	default:
		s.logger.Error("quiz pipeline failed", zap.Error(result.Err))
		writeError(w, http.StatusInternalServerError, result.Err.Error())
	}
}

func (s *Server) handleUploadPDF(w http.ResponseWriter, r *http.Request) {
	text, _, ok := s.readPDFUpload(w, r)
	if !ok {
		return
	}

	data, err := s.docs.Outline(r.Context(), text)
	if err != nil {
		s.logger.Error("outline generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "success",
		"data":   data,
	})
}

func (s *Server) handleEquation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurveName string `json:"curve_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No input provided")
		return
	}

	equation, err := s.docs.CurveEquation(r.Context(), req.CurveName)
	if err != nil {
		s.logger.Error("equation lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"equation": equation,
	})
}

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	key := s.s3Prefix + path.Base(header.Filename)
	url, err := s.store.Put(r.Context(), key, file)
	if err != nil {
		s.logger.Error("file upload failed", zap.String("key", key), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "success",
		"url":    url,
	})
}

func (s *Server) handleSummarizePDF(w http.ResponseWriter, r *http.Request) {
	text, _, ok := s.readPDFUpload(w, r)
	if !ok {
		return
	}

	userQuery := r.FormValue("user_query")
	if userQuery == "" {
		writeError(w, http.StatusBadRequest, "No user_query provided")
		return
	}

	summary, err := s.docs.Summarize(r.Context(), text, userQuery)
	if err != nil {
		s.logger.Error("summarization failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"summary": summary,
	})
}

// readPDFUpload reads the multipart "file" field and extracts its text.
// Writes the error response itself when ok is false.
func (s *Server) readPDFUpload(w http.ResponseWriter, r *http.Request) (text, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return "", "", false
	}

	extracted, err := ingest.ExtractPDFText(data)
	if err != nil {
		s.logger.Warn("PDF extraction failed",
			zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return "", "", false
	}

	return extracted, header.Filename, true
}
