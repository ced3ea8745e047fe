// Package profile serves the authenticated account summary.
package profile

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mindverse/mindverse/internal/api"
	"github.com/mindverse/mindverse/internal/auth"
)

type Response struct {
	Email                 string    `json:"email"`
	CreatedAt             time.Time `json:"createdAt"`
	InterpretationCredits int       `json:"interpretationCredits"`
}

type Handler struct {
	accounts auth.Accounts
	log      *slog.Logger
}

func NewHandler(accounts auth.Accounts, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{accounts: accounts, log: log}
}

// Get handles GET /api/profile.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountIDFromCtx(r.Context())
	acc, err := h.accounts.GetByID(r.Context(), accountID)
	if err != nil {
		h.log.Error("profile fetch failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.KindInternal, "internal error")
		return
	}
	if acc == nil {
		api.WriteError(w, http.StatusNotFound, api.KindNotFound, "user not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, Response{
		Email:                 acc.Email,
		CreatedAt:             acc.CreatedAt,
		InterpretationCredits: acc.CreditBalance,
	})
}
