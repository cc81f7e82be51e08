package handlers

import (
	"net/http"

	"hackatweet/internal/models"
)

type UsersResponse struct {
	Result bool                 `json:"result"`
	Users  []models.UserSummary `json:"users"`
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, UsersResponse{Result: true, Users: users}, http.StatusOK)
}
