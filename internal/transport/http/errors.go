package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"heritage-quiz-service/internal/domain"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: message}})
}

// errorStatus maps service errors onto HTTP status codes and stable codes.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusNotFound, "INVALID_CATEGORY"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidOption):
		return http.StatusBadRequest, "INVALID_OPTION"
	case errors.Is(err, domain.ErrUnknownLifeline):
		return http.StatusBadRequest, "UNKNOWN_LIFELINE"
	case errors.Is(err, domain.ErrInvalidContact):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, domain.ErrQuestionNotAnswered):
		return http.StatusConflict, "QUESTION_NOT_ANSWERED"
	case errors.Is(err, domain.ErrTimeExpired):
		return http.StatusConflict, "TIME_EXPIRED"
	case errors.Is(err, domain.ErrLifelineAlreadyUsed):
		return http.StatusConflict, "LIFELINE_ALREADY_USED"
	case errors.Is(err, domain.ErrSessionCompleted):
		return http.StatusConflict, "SESSION_COMPLETED"
	case errors.Is(err, domain.ErrSessionInProgress):
		return http.StatusConflict, "SESSION_IN_PROGRESS"
	case errors.Is(err, domain.ErrNoPreviousQuestion):
		return http.StatusConflict, "NO_PREVIOUS_QUESTION"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func handleServiceError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		writeError(w, status, code, "internal server error")
		return
	}
	resp := errorResponse{Error: apiError{Code: code, Message: err.Error()}}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Error.Field = verr.Field
		resp.Error.Message = verr.Message
	}
	writeJSON(w, status, resp)
}
