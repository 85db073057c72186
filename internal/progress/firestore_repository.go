package progress

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evannickel/hike-together/internal/badge"
)

const (
	familiesCollection = "families"
	badgesCollection   = "badges"
)

// FirestoreRepository stores earned badges under families/{familyID}/badges,
// one document per badge ID, and the XP total on the family document itself.
type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) family(familyID string) *firestore.DocumentRef {
	return r.client.Collection(familiesCollection).Doc(familyID)
}

type earnedBadgeDoc struct {
	BadgeID  string    `firestore:"badge_id"`
	Name     string    `firestore:"name"`
	Icon     string    `firestore:"icon"`
	Category string    `firestore:"category"`
	Manual   bool      `firestore:"manual"`
	EarnedAt time.Time `firestore:"earned_at"`
}

type progressDoc struct {
	TotalXP      int64 `firestore:"total_xp"`
	CurrentLevel int64 `firestore:"current_level"`
}

func (r *FirestoreRepository) ListEarnedBadges(ctx context.Context, familyID string) ([]EarnedBadge, error) {
	iter := r.family(familyID).Collection(badgesCollection).Documents(ctx)
	defer iter.Stop()

	var earned []EarnedBadge
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing earned badges: %w", err)
		}

		var doc earnedBadgeDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decoding earned badge %s: %w", snap.Ref.ID, err)
		}
		earned = append(earned, EarnedBadge{
			BadgeID:  doc.BadgeID,
			Name:     doc.Name,
			Icon:     doc.Icon,
			Category: badge.Category(doc.Category),
			Manual:   doc.Manual,
			EarnedAt: doc.EarnedAt,
		})
	}
	return earned, nil
}

// RecordBadge creates the badge document keyed by badge ID. Create fails with
// AlreadyExists when the family earned it before, which is the idempotency
// signal rather than an error.
func (r *FirestoreRepository) RecordBadge(ctx context.Context, familyID string, earned EarnedBadge) (bool, error) {
	ref := r.family(familyID).Collection(badgesCollection).Doc(earned.BadgeID)
	_, err := ref.Create(ctx, earnedBadgeDoc{
		BadgeID:  earned.BadgeID,
		Name:     earned.Name,
		Icon:     earned.Icon,
		Category: string(earned.Category),
		Manual:   earned.Manual,
		EarnedAt: earned.EarnedAt,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return true, nil
		}
		return false, fmt.Errorf("creating earned badge: %w", err)
	}
	return false, nil
}

func (r *FirestoreRepository) AddXP(ctx context.Context, familyID string, delta int) (int, error) {
	ref := r.family(familyID)

	var total int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, familyID)
			}
			return err
		}

		var doc progressDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("decoding progress for %s: %w", familyID, err)
		}

		total = int(doc.TotalXP) + delta
		if total < 0 {
			total = 0
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "total_xp", Value: total},
			{Path: "current_level", Value: badge.LevelFor(total).Level},
		})
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *FirestoreRepository) GetProgress(ctx context.Context, familyID string) (FamilyProgress, error) {
	snap, err := r.family(familyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return FamilyProgress{}, fmt.Errorf("%w: %s", ErrNotFound, familyID)
		}
		return FamilyProgress{}, fmt.Errorf("getting progress: %w", err)
	}

	var doc progressDoc
	if err := snap.DataTo(&doc); err != nil {
		return FamilyProgress{}, fmt.Errorf("decoding progress for %s: %w", familyID, err)
	}
	return FamilyProgress{
		TotalXP: int(doc.TotalXP),
		Level:   badge.LevelFor(int(doc.TotalXP)).Level,
	}, nil
}
