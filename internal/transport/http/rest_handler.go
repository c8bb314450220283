package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"heritage-quiz-service/internal/app"
	"heritage-quiz-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

// RESTHandler exposes the quiz and contact use cases as JSON endpoints.
type RESTHandler struct {
	quiz    *app.QuizService
	contact *app.ContactService
}

func NewRESTHandler(quiz *app.QuizService, contact *app.ContactService) *RESTHandler {
	return &RESTHandler{quiz: quiz, contact: contact}
}

type startRequest struct {
	UserID   string `json:"userId"`
	Category string `json:"category"`
}

type answerRequest struct {
	Option *int `json:"option"`
}

// stepResponse pairs an operation's outcome with the session state after it.
type stepResponse struct {
	Outcome any             `json:"outcome"`
	Session app.SessionView `json:"session"`
}

func (h *RESTHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.quiz.Categories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *RESTHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "userId and category are required")
		return
	}
	view, err := h.quiz.Start(r.Context(), req.UserID, req.Category)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *RESTHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.quiz.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RESTHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RESTHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "option is required")
		return
	}
	id := chi.URLParam(r, "id")
	outcome, err := h.quiz.SubmitAnswer(r.Context(), id, *req.Option)
	h.step(w, r, id, outcome, err)
}

func (h *RESTHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	outcome, err := h.quiz.Advance(r.Context(), id)
	h.step(w, r, id, outcome, err)
}

func (h *RESTHandler) Previous(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	outcome, err := h.quiz.Previous(r.Context(), id)
	h.step(w, r, id, outcome, err)
}

func (h *RESTHandler) Tick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	outcome, err := h.quiz.Tick(r.Context(), id)
	h.step(w, r, id, outcome, err)
}

func (h *RESTHandler) UseLifeline(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLifeline(chi.URLParam(r, "kind"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	outcome, err := h.quiz.UseLifeline(r.Context(), id, kind)
	h.step(w, r, id, outcome, err)
}

func (h *RESTHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.quiz.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *RESTHandler) Results(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "userId is required")
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "limit must be a number")
		return
	}
	results, err := h.quiz.Results(r.Context(), userID, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *RESTHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "limit must be a number")
		return
	}
	entries, err := h.quiz.Leaderboard(r.Context(), chi.URLParam(r, "category"), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *RESTHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	saved, err := h.contact.Submit(r.Context(), msg)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":      saved.ID,
		"message": "Thank you for your message! We will get back to you soon.",
	})
}

func (h *RESTHandler) step(w http.ResponseWriter, r *http.Request, sessionID string, outcome any, err error) {
	if err != nil {
		handleServiceError(w, err)
		return
	}
	view, err := h.quiz.Get(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Outcome: outcome, Session: view})
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
