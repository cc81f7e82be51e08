package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hackatweet/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Result bool   `json:"result"`
	Error  string `json:"error"`
}

type MessageResponse struct {
	Result  bool   `json:"result"`
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Result: false, Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps service error kinds onto HTTP statuses. Anything
// unrecognised is logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Request failed")
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	switch {
	case errors.Is(err, service.ErrPasswordTooShort):
		WriteError(w, svcErr.Message, http.StatusBadRequest)
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		WriteError(w, svcErr.Message, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrAuth):
		WriteError(w, svcErr.Message, http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, svcErr.Message, http.StatusNotFound)
	default:
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
