package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mindverse/mindverse/internal/api"
)

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	svc Service
	log *slog.Logger
}

func NewHandler(svc Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log}
}

// SignUp handles POST /api/signup.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "email and password are required")
		return
	}
	_, err := h.svc.Register(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			api.WriteError(w, http.StatusConflict, api.KindConflict, "email already in use")
		case errors.Is(err, ErrWeakPassword), errors.Is(err, ErrPasswordMismatch):
			api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, err.Error())
		default:
			h.log.Error("signup failed", "error", err)
			api.WriteError(w, http.StatusInternalServerError, api.KindInternal, "registration failed")
		}
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// SignIn handles POST /api/signin.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "email and password are required")
		return
	}
	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.WriteError(w, http.StatusUnauthorized, api.KindUnauthorized, "invalid credentials")
			return
		}
		h.log.Error("signin failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.KindInternal, "signin failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, SignInResponse{Token: token})
}
