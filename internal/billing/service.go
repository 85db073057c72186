package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/evannickel/hike-together/internal/family"
)

// Config carries the Stripe settings the service needs at runtime.
type Config struct {
	PriceID       string
	SuccessURL    string
	CancelURL     string
	WebhookSecret string
}

// Service owns the upgrade flow: checkout sessions out, webhooks in.
type Service struct {
	stripe   *StripeClient
	families family.Repository
	gate     *Gate
	clock    Clock
	logger   *slog.Logger
	cfg      Config
}

func NewService(stripe *StripeClient, families family.Repository, gate *Gate, clock Clock, logger *slog.Logger, cfg Config) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{stripe: stripe, families: families, gate: gate, clock: clock, logger: logger, cfg: cfg}
}

// CreateCheckout opens a Stripe checkout session for upgrading the family.
func (s *Service) CreateCheckout(ctx context.Context, fam family.Family, userID string) (CheckoutSession, error) {
	if fam.Premium() {
		return CheckoutSession{}, ErrAlreadyPremium
	}
	return s.stripe.CreateCheckoutSession(ctx, CheckoutParams{
		FamilyID:   fam.ID,
		UserID:     userID,
		PriceID:    s.cfg.PriceID,
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
	})
}

type checkoutCompleted struct {
	ClientReferenceID string `json:"client_reference_id"`
	Customer          string `json:"customer"`
	Subscription      string `json:"subscription"`
	Metadata          struct {
		FamilyID string `json:"family_id"`
	} `json:"metadata"`
}

type subscriptionDeleted struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
}

// HandleWebhook verifies and applies one Stripe event. Unrecognized event
// types are acknowledged without action so Stripe stops retrying them.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	if err := VerifySignature(payload, sigHeader, s.cfg.WebhookSecret, DefaultTolerance, s.clock.Now()); err != nil {
		return err
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decoding webhook event: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		s.logger.DebugContext(ctx, "ignoring webhook event", "event_type", event.Type, "event_id", event.ID)
		return nil
	}
}

func (s *Service) handleCheckoutCompleted(ctx context.Context, event Event) error {
	var session checkoutCompleted
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return fmt.Errorf("decoding checkout session: %w", err)
	}

	familyID := session.ClientReferenceID
	if familyID == "" {
		familyID = session.Metadata.FamilyID
	}
	if familyID == "" {
		return fmt.Errorf("checkout event %s has no family reference", event.ID)
	}

	if err := s.families.SetSubscription(ctx, familyID, family.StatusPremium, session.Customer, session.Subscription, s.clock.Now()); err != nil {
		return fmt.Errorf("upgrading family %s: %w", familyID, err)
	}
	s.gate.Invalidate(familyID)
	s.logger.InfoContext(ctx, "family upgraded to premium", "family_id", familyID, "event_id", event.ID)
	return nil
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, event Event) error {
	var sub subscriptionDeleted
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
		return fmt.Errorf("decoding subscription: %w", err)
	}

	fam, err := s.families.GetByStripeSubscription(ctx, sub.ID)
	if err != nil {
		return fmt.Errorf("finding family for subscription %s: %w", sub.ID, err)
	}

	if err := s.families.SetSubscription(ctx, fam.ID, family.StatusFree, fam.StripeCustomerID, "", s.clock.Now()); err != nil {
		return fmt.Errorf("downgrading family %s: %w", fam.ID, err)
	}
	s.gate.Invalidate(fam.ID)
	s.logger.InfoContext(ctx, "family downgraded to free", "family_id", fam.ID, "event_id", event.ID)
	return nil
}
