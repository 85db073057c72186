package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"

	"github.com/evannickel/hike-together/internal/badge"
	"github.com/evannickel/hike-together/internal/billing"
	"github.com/evannickel/hike-together/internal/config"
	"github.com/evannickel/hike-together/internal/family"
	"github.com/evannickel/hike-together/internal/hike"
	"github.com/evannickel/hike-together/internal/httpapi"
	"github.com/evannickel/hike-together/internal/platform/auth"
	"github.com/evannickel/hike-together/internal/platform/logging"
	"github.com/evannickel/hike-together/internal/platform/server"
	"github.com/evannickel/hike-together/internal/progress"
)

const entitlementCacheSize = 4096

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger("hike-service")

	repos, cleanup, err := newRepositories(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("repository init error: %w", err))
	}
	defer cleanup()

	catalog, err := badge.Default()
	if err != nil {
		panic(fmt.Errorf("badge catalog error: %w", err))
	}

	familyService := family.NewService(repos.families, nil, nil, nil)

	gate, err := billing.NewGate(repos.families, cfg.Plan.FreeHikeLimit, entitlementCacheSize, time.Minute, nil)
	if err != nil {
		panic(fmt.Errorf("entitlement gate error: %w", err))
	}

	stripeClient := billing.NewStripeClient(cfg.Stripe.SecretKey)
	billingService := billing.NewService(stripeClient, repos.families, gate, nil, logger, billing.Config{
		PriceID:       cfg.Stripe.PriceID,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
		WebhookSecret: cfg.Stripe.WebhookSecret,
	})

	progressService := progress.NewService(catalog, repos.progress, hike.RealClock{}, cfg.Plan.AwardBadgeXP)
	hikeService := hike.NewService(repos.hikes, repos.families, gate, progressService, nil, nil)

	verifier, err := auth.NewVerifier(auth.Config{
		Mode:     cfg.Auth.Mode,
		JWKSURL:  cfg.Auth.JWKSURL,
		Audience: cfg.Auth.Audience,
		Issuer:   cfg.Auth.Issuer,
	})
	if err != nil {
		panic(fmt.Errorf("auth verifier error: %w", err))
	}

	router := server.NewRouter("hike-service", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(verifier))
			httpapi.RegisterRoutes(r, httpapi.Deps{
				Hikes:    hikeService,
				Progress: progressService,
				Families: familyService,
				Billing:  billingService,
				Gate:     gate,
				Logger:   logger,
			})
		})

		httpapi.RegisterWebhookRoutes(r, billingService, logger)
		httpapi.RegisterInternalRoutes(r, familyService, logger)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := server.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

type repositories struct {
	hikes    hike.Repository
	progress progress.Repository
	families family.Repository
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, func(), error) {
	switch cfg.DataStore {
	case config.DataStoreFirestore:
		if cfg.Firestore.EmulatorHost != "" {
			if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.Firestore.EmulatorHost); err != nil {
				return repositories{}, nil, fmt.Errorf("set FIRESTORE_EMULATOR_HOST: %w", err)
			}
		}

		client, err := firestore.NewClient(ctx, cfg.GCPProjectID)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("firestore client: %w", err)
		}

		repos := repositories{
			hikes:    hike.NewFirestoreRepository(client),
			progress: progress.NewFirestoreRepository(client),
			families: family.NewFirestoreRepository(client),
		}
		cleanup := func() {
			_ = client.Close()
		}
		return repos, cleanup, nil
	default:
		repos := repositories{
			hikes:    hike.NewMemoryRepository(),
			progress: progress.NewMemoryRepository(),
			families: family.NewMemoryRepository(),
		}
		return repos, func() {}, nil
	}
}
