package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/PabloGalante/moodlens/internal/app/mood"
	"github.com/PabloGalante/moodlens/internal/domain"
)

type Server struct {
	svc         *mood.Service
	serviceName string
}

func NewServer(svc *mood.Service, serviceName string) http.Handler {
	s := &Server{svc: svc, serviceName: serviceName}
	mux := http.NewServeMux()

	// /        → GET: service banner
	// /analyze → POST: classify text and record it
	// /history → GET: every record, oldest first
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/history", s.handleHistory)

	mux.HandleFunc("/moods", s.handleMoods)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return chainMiddlewares(mux, withRecover, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type analyzeRequest struct {
	// pointer so a missing or null text can be told apart from ""
	Text *string `json:"text"`
}

type recordResponse struct {
	Text       string `json:"text"`
	Mood       string `json:"mood"`
	Suggestion string `json:"suggestion"`
	Time       string `json:"time"`
}

type moodGroupResponse struct {
	Mood       string   `json:"mood"`
	Suggestion string   `json:"suggestion"`
	Triggers   []string `json:"triggers"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all
	if r.URL.Path != "/" {
		notFound(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: s.serviceName + " backend is running",
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	text, err := decodeAnalyzeRequest(r.Body)
	if err != nil {
		unprocessable(w, err.Error())
		return
	}

	record := s.svc.Analyze(r.Context(), text)

	writeJSON(w, http.StatusOK, toRecordResponse(record))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	records := s.svc.History(r.Context())

	writeJSON(w, http.StatusOK, toRecordsResponse(records))
}

func (s *Server) handleMoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	groups := mood.Groups()
	out := make([]moodGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, moodGroupResponse{
			Mood:       g.Mood,
			Suggestion: g.Suggestion,
			Triggers:   g.Triggers,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────
// Mood Helpers
// ─────────────────────────────────────────────

var (
	errEmptyBody     = errors.New("request body is required")
	errInvalidJSON   = errors.New("invalid JSON body")
	errTextRequired  = errors.New("text is required")
	errTextNotString = errors.New("text must be a string")
)

func decodeAnalyzeRequest(body io.Reader) (string, error) {
	var req analyzeRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return "", errEmptyBody
		case errors.As(err, &typeErr) && typeErr.Field == "text":
			return "", errTextNotString
		default:
			return "", errInvalidJSON
		}
	}

	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return "", errInvalidJSON
	}

	if req.Text == nil {
		return "", errTextRequired
	}
	return *req.Text, nil
}

func toRecordResponse(rec domain.MoodRecord) recordResponse {
	return recordResponse{
		Text:       rec.Text,
		Mood:       rec.Mood,
		Suggestion: rec.Suggestion,
		Time:       rec.Time,
	}
}

func toRecordsResponse(recs []domain.MoodRecord) []recordResponse {
	out := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func unprocessable(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "not found",
	})
}
