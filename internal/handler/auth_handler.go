package handlers

import (
	"net/http"

	"hackatweet/internal/service"
)

type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Result    bool   `json:"result"`
	Firstname string `json:"firstname"`
	Username  string `json:"username"`
	Token     string `json:"token"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	// registering a user in the service
	profile, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Firstname: req.Firstname,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		Result:    true,
		Firstname: profile.Firstname,
		Username:  profile.Username,
		Token:     profile.Token,
	}, http.StatusCreated)
}

func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		Result:    true,
		Firstname: profile.Firstname,
		Username:  profile.Username,
		Token:     profile.Token,
	}, http.StatusOK)
}
