package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evannickel/hike-together/internal/billing"
	"github.com/evannickel/hike-together/internal/family"
	"github.com/evannickel/hike-together/internal/hike"
	"github.com/evannickel/hike-together/internal/platform/auth"
	"github.com/evannickel/hike-together/internal/progress"
)

// Deps bundles the services the API surface is built from.
type Deps struct {
	Hikes    *hike.Service
	Progress *progress.Service
	Families *family.Service
	Billing  *billing.Service
	Gate     *billing.Gate
	Logger   *slog.Logger
}

// RegisterRoutes wires the authenticated API routes onto the provided router.
func RegisterRoutes(r chi.Router, deps Deps) {
	h := &handler{deps: deps}

	r.Route("/v1/families", func(r chi.Router) {
		r.Post("/", h.createFamily)
		r.Post("/join", h.joinFamily)
		r.Get("/mine", h.getMyFamily)
		r.Patch("/preferences", h.updatePreferences)
		r.Post("/invite-code", h.ensureInviteCode)
	})

	r.Route("/v1/hikes", func(r chi.Router) {
		r.Get("/", h.listHikes)
		r.Post("/", h.logHike)
		r.Get("/stats", h.getStats)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getHike)
			r.Patch("/", h.updateHike)
			r.Delete("/", h.deleteHike)
		})
	})

	r.Route("/v1/badges", func(r chi.Router) {
		r.Get("/", h.getBadges)
		r.Post("/{id}/claim", h.claimBadge)
	})

	r.Route("/v1/billing", func(r chi.Router) {
		r.Post("/checkout", h.createCheckout)
		r.Get("/allowance", h.getAllowance)
	})
}

// RegisterWebhookRoutes wires the unauthenticated Stripe webhook endpoint.
func RegisterWebhookRoutes(r chi.Router, billingService *billing.Service, logger *slog.Logger) {
	h := &webhookHandler{billing: billingService, logger: logger}
	r.Post("/webhooks/stripe", h.handleStripe)
}

// RegisterInternalRoutes wires operational endpoints meant for the scheduler,
// not end users. Deploy them behind infrastructure-level auth.
func RegisterInternalRoutes(r chi.Router, families *family.Service, logger *slog.Logger) {
	h := &internalHandler{families: families, logger: logger}
	r.Post("/internal/reset-monthly-hikes", h.resetMonthlyHikes)
}

type handler struct {
	deps Deps
}

// requireFamily resolves the caller's family from the auth context. It writes
// the error response itself; callers bail out when ok is false.
func (h *handler) requireFamily(w http.ResponseWriter, r *http.Request) (family.Family, auth.AuthenticatedUser, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return family.Family{}, auth.AuthenticatedUser{}, false
	}

	fam, err := h.deps.Families.GetForUser(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, family.ErrNoFamily) {
			writeError(w, http.StatusNotFound, "create or join a family first")
		} else {
			h.logServiceError(r, err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return family.Family{}, auth.AuthenticatedUser{}, false
	}
	return fam, user, true
}

func (h *handler) logServiceError(r *http.Request, err error) {
	h.deps.Logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
}
