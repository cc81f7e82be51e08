package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"hackatweet/internal/config"
	"hackatweet/internal/repository"
	"hackatweet/internal/service"
)

type Handlers struct {
	UserService  service.UserService
	AuthService  service.AuthService
	PostService  service.PostService
	TrendService service.TrendService
	Health       repository.HealthChecker
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:  service.User,
		AuthService:  service.Auth,
		PostService:  service.Post,
		TrendService: service.Trend,
		Health:       repo.Health,
		Cfg:          config,
		Validate:     validator.New(),
	}
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
// It writes the error response itself and reports whether to continue.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	// an empty body is treated as a request with every field missing
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, service.ErrMissingFields.Message, http.StatusUnprocessableEntity)
		return false
	}

	return true
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Backend Hackatweet is running!"))
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		if err := h.Health.HealthCheck(r.Context()); err != nil {
			WriteError(w, "Store unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	WriteSuccess(w, MessageResponse{Result: true, Message: "ok"}, http.StatusOK)
}
