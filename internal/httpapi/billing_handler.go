package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/evannickel/hike-together/internal/billing"
	"github.com/evannickel/hike-together/internal/family"
)

type checkoutResponse struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl"`
}

func (h *handler) createCheckout(w http.ResponseWriter, r *http.Request) {
	fam, user, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	// Only the owner can put the family on a paid plan.
	if _, err := h.deps.Families.RequireOwner(r.Context(), fam.ID, user.UserID); err != nil {
		h.respondBillingError(w, r, err)
		return
	}

	session, err := h.deps.Billing.CreateCheckout(r.Context(), fam, user.UserID)
	if err != nil {
		h.respondBillingError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	})
}

type allowanceResponse struct {
	Allowed bool `json:"allowed"`
	Premium bool `json:"premium"`
	Used    int  `json:"used"`
	Limit   int  `json:"limit"`
}

func (h *handler) getAllowance(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	allowance, err := h.deps.Gate.CanLogHike(r.Context(), fam.ID)
	if err != nil {
		h.respondBillingError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, allowanceResponse{
		Allowed: allowance.Allowed,
		Premium: allowance.Premium,
		Used:    allowance.Used,
		Limit:   allowance.Limit,
	})
}

func (h *handler) respondBillingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, billing.ErrAlreadyPremium):
		writeError(w, http.StatusConflict, "family is already premium")
	case errors.Is(err, family.ErrNotOwner):
		writeError(w, http.StatusForbidden, "only the family owner can manage billing")
	case errors.Is(err, family.ErrNotFound):
		writeError(w, http.StatusNotFound, "family not found")
	default:
		h.logServiceError(r, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type webhookHandler struct {
	billing *billing.Service
	logger  *slog.Logger
}

// handleStripe applies one Stripe event. The raw body is read before any
// decoding because the signature covers the exact bytes.
func (h *webhookHandler) handleStripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read payload")
		return
	}

	err = h.billing.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"received": "true"})
	case errors.Is(err, billing.ErrInvalidSignature):
		writeError(w, http.StatusBadRequest, "invalid signature")
	default:
		h.logger.ErrorContext(r.Context(), "webhook processing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type internalHandler struct {
	families *family.Service
	logger   *slog.Logger
}

func (h *internalHandler) resetMonthlyHikes(w http.ResponseWriter, r *http.Request) {
	reset, err := h.families.ResetMonthlyCounters(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "monthly reset failed", "error", err, "families_reset", reset)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"familiesReset": reset})
}
