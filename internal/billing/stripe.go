package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const stripeAPIBase = "https://api.stripe.com"

// StripeClient is a thin form-encoded client for the two Stripe endpoints the
// service needs; the full SDK would be overkill for one call.
type StripeClient struct {
	httpClient *http.Client
	secretKey  string
	baseURL    string
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		secretKey:  secretKey,
		baseURL:    stripeAPIBase,
	}
}

// CheckoutParams describes a subscription checkout for one family.
type CheckoutParams struct {
	FamilyID   string
	UserID     string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the subset of Stripe's session object the caller needs.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateCheckoutSession opens a Stripe-hosted subscription checkout. The
// family ID rides along as the client reference so the completion webhook can
// find its way back.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", params.PriceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("client_reference_id", params.FamilyID)
	form.Set("metadata[family_id]", params.FamilyID)
	form.Set("metadata[user_id]", params.UserID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("building checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("calling stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("reading stripe response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var se stripeError
		if err := json.Unmarshal(body, &se); err == nil && se.Error.Message != "" {
			return CheckoutSession{}, fmt.Errorf("stripe checkout failed (%d): %s", resp.StatusCode, se.Error.Message)
		}
		return CheckoutSession{}, fmt.Errorf("stripe checkout failed with status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return CheckoutSession{}, fmt.Errorf("decoding checkout session: %w", err)
	}
	return session, nil
}
