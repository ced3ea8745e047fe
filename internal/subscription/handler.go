package subscription

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mindverse/mindverse/internal/api"
	"github.com/mindverse/mindverse/internal/auth"
	"github.com/mindverse/mindverse/internal/ledger"
	"github.com/mindverse/mindverse/internal/models"
)

type SubscribeRequest struct {
	PlanID string `json:"planId"`
}

type SubscribeResponse struct {
	Message string `json:"message"`
	Credits int    `json:"credits"`
}

type Handler struct {
	ledger ledger.Service
	log    *slog.Logger
}

func NewHandler(ledgerSvc ledger.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{ledger: ledgerSvc, log: log}
}

// Subscribe handles POST /api/subscribe: redeems a plan by crediting its
// interpretation count to the authenticated account.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	accountID := auth.AccountIDFromCtx(r.Context())
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "invalid JSON")
		return
	}
	plan, ok := Find(req.PlanID)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, api.KindInvalidInput, "invalid plan")
		return
	}
	credits, err := h.ledger.Credit(r.Context(), accountID, plan.Interpretations, models.CreditEntrySubscriptionGrant)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			api.WriteError(w, http.StatusNotFound, api.KindNotFound, "account not found")
			return
		}
		h.log.Error("subscribe failed", "error", err, "plan", plan.ID)
		api.WriteError(w, http.StatusInternalServerError, api.KindInternal, "subscription failed")
		return
	}
	h.log.Info("plan redeemed", "account", accountID, "plan", plan.ID, "credits", credits)
	api.WriteJSON(w, http.StatusOK, SubscribeResponse{Message: "Subscription successful", Credits: credits})
}

// ListPlans handles GET /api/plans.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, Plans())
}
