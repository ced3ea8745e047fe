package interpreter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mindverse/mindverse/internal/api"
	"github.com/mindverse/mindverse/internal/auth"
	"github.com/mindverse/mindverse/internal/ledger"
)

type InterpretRequest struct {
	DreamText string `json:"dreamText"`
	Language  string `json:"language"`
}

type InterpretResponse struct {
	Interpretation string `json:"interpretation"`
	Credits        int    `json:"credits"`
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

// Interpret handles POST /api/interpret.
func (h *Handler) Interpret(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountIDFromCtx(r.Context())
	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "invalid JSON")
		return
	}
	if req.DreamText == "" || req.Language == "" {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "dream text and language are required")
		return
	}
	res, err := h.svc.Interpret(r.Context(), accountID, req.DreamText, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, ErrDreamTooShort):
			api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, err.Error())
		case errors.Is(err, ledger.ErrInsufficientCredit):
			api.WriteError(w, http.StatusForbidden, api.KindInsufficientCredit, "no interpretation credits remaining, please subscribe")
		case errors.Is(err, ledger.ErrAccountNotFound):
			api.WriteError(w, http.StatusNotFound, api.KindNotFound, "account not found")
		case errors.Is(err, ErrInterpretationFailed):
			api.WriteError(w, http.StatusInternalServerError, api.KindInterpretationFailed, "failed to interpret dream")
		default:
			h.log.Error("interpret failed", "error", err)
			api.WriteError(w, http.StatusInternalServerError, api.KindInternal, "internal error")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, InterpretResponse{Interpretation: res.Interpretation, Credits: res.Credits})
}
