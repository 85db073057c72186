package config

import (
	"fmt"
	"strings"

	"github.com/evannickel/hike-together/internal/platform/auth"
	"github.com/evannickel/hike-together/internal/platform/envconfig"
)

// Config encapsulates the runtime configuration for the hike service.
type Config struct {
	Port         string
	GCPProjectID string
	DataStore    DataStore
	Auth         AuthConfig
	Firestore    FirestoreConfig
	Stripe       StripeConfig
	Plan         PlanConfig
}

// DataStore enumerates supported persistence backends.
type DataStore string

const (
	// DataStoreMemory keeps everything in-memory (useful for local development/testing).
	DataStoreMemory DataStore = "memory"
	// DataStoreFirestore stores documents in Google Cloud Firestore.
	DataStoreFirestore DataStore = "firestore"
)

// AuthConfig stores authentication middleware setup.
type AuthConfig struct {
	Mode     auth.Mode
	JWKSURL  string
	Audience string
	Issuer   string
}

// FirestoreConfig tailors Firestore client behavior.
type FirestoreConfig struct {
	EmulatorHost string
}

// StripeConfig contains the billing integration settings.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string
	SuccessURL    string
	CancelURL     string
}

// PlanConfig tunes the free plan limits and XP behavior.
type PlanConfig struct {
	FreeHikeLimit int
	AwardBadgeXP  bool
}

// Load reads environment variables into Config with validation.
func Load() (Config, error) {
	cfg := Config{
		Port:         envconfig.Get("PORT", "8080"),
		GCPProjectID: envconfig.Get("GCP_PROJECT_ID", ""),
		DataStore:    DataStore(strings.ToLower(envconfig.Get("DATASTORE", string(DataStoreMemory)))),
		Auth: AuthConfig{
			Mode:     auth.Mode(strings.ToLower(envconfig.Get("AUTH_MODE", string(auth.ModeNoop)))),
			JWKSURL:  envconfig.Get("AUTH_JWKS_URL", ""),
			Audience: envconfig.Get("AUTH_AUDIENCE", ""),
			Issuer:   envconfig.Get("AUTH_ISSUER", ""),
		},
		Firestore: FirestoreConfig{
			EmulatorHost: envconfig.Get("FIRESTORE_EMULATOR_HOST", ""),
		},
		Stripe: StripeConfig{
			SecretKey:     envconfig.Get("STRIPE_SECRET_KEY", ""),
			WebhookSecret: envconfig.Get("STRIPE_WEBHOOK_SECRET", ""),
			PriceID:       envconfig.Get("STRIPE_PRICE_ID", ""),
			SuccessURL:    envconfig.Get("CHECKOUT_SUCCESS_URL", ""),
			CancelURL:     envconfig.Get("CHECKOUT_CANCEL_URL", ""),
		},
		Plan: PlanConfig{
			FreeHikeLimit: envconfig.GetInt("FREE_HIKE_LIMIT", 3),
			AwardBadgeXP:  envconfig.GetBool("AWARD_BADGE_XP", false),
		},
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return fmt.Errorf("port must be specified")
	}

	switch cfg.DataStore {
	case DataStoreMemory:
		// no-op
	case DataStoreFirestore:
		if cfg.GCPProjectID == "" {
			return fmt.Errorf("gcp project id required when datastore=firestore")
		}
	default:
		return fmt.Errorf("unsupported datastore: %s", cfg.DataStore)
	}

	switch cfg.Auth.Mode {
	case auth.ModeJWKS:
		if cfg.Auth.JWKSURL == "" {
			return fmt.Errorf("AUTH_JWKS_URL is required when AUTH_MODE=jwks")
		}
	case auth.ModeNoop:
		// no-op
	default:
		return fmt.Errorf("unsupported auth mode: %s", cfg.Auth.Mode)
	}

	if cfg.Stripe.SecretKey != "" {
		if cfg.Stripe.PriceID == "" {
			return fmt.Errorf("STRIPE_PRICE_ID is required when billing is enabled")
		}
		if cfg.Stripe.SuccessURL == "" || cfg.Stripe.CancelURL == "" {
			return fmt.Errorf("CHECKOUT_SUCCESS_URL and CHECKOUT_CANCEL_URL are required when billing is enabled")
		}
	}

	if cfg.Plan.FreeHikeLimit <= 0 {
		return fmt.Errorf("FREE_HIKE_LIMIT must be positive")
	}

	return nil
}
