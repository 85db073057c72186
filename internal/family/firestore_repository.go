package family

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	familiesCollection = "families"
	usersCollection    = "users"
)

// FirestoreRepository stores families in the families collection and a
// user-to-family link document per member in users.
type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) families() *firestore.CollectionRef {
	return r.client.Collection(familiesCollection)
}

type familyDoc struct {
	Name                 string    `firestore:"name"`
	InviteCode           string    `firestore:"invite_code"`
	OwnerUserID          string    `firestore:"owner_user_id"`
	MemberUserIDs        []string  `firestore:"member_user_ids"`
	SubscriptionStatus   string    `firestore:"subscription_status"`
	StripeCustomerID     string    `firestore:"stripe_customer_id"`
	StripeSubscriptionID string    `firestore:"stripe_subscription_id"`
	HikesThisMonth       int64     `firestore:"hikes_this_month"`
	UnitSystem           string    `firestore:"unit_system"`
	TotalXP              int64     `firestore:"total_xp"`
	CurrentLevel         int64     `firestore:"current_level"`
	CreatedAt            time.Time `firestore:"created_at"`
	UpdatedAt            time.Time `firestore:"updated_at"`
}

type userDoc struct {
	FamilyID string `firestore:"family_id"`
	Role     string `firestore:"role"`
}

func familyFromDoc(id string, doc familyDoc) Family {
	return Family{
		ID:                   id,
		Name:                 doc.Name,
		InviteCode:           doc.InviteCode,
		OwnerUserID:          doc.OwnerUserID,
		MemberUserIDs:        doc.MemberUserIDs,
		SubscriptionStatus:   SubscriptionStatus(doc.SubscriptionStatus),
		StripeCustomerID:     doc.StripeCustomerID,
		StripeSubscriptionID: doc.StripeSubscriptionID,
		HikesThisMonth:       int(doc.HikesThisMonth),
		UnitSystem:           doc.UnitSystem,
		TotalXP:              int(doc.TotalXP),
		CreatedAt:            doc.CreatedAt,
		UpdatedAt:            doc.UpdatedAt,
	}
}

func (r *FirestoreRepository) Create(ctx context.Context, fam Family) error {
	_, err := r.families().Doc(fam.ID).Create(ctx, familyDoc{
		Name:               fam.Name,
		InviteCode:         fam.InviteCode,
		OwnerUserID:        fam.OwnerUserID,
		MemberUserIDs:      fam.MemberUserIDs,
		SubscriptionStatus: string(fam.SubscriptionStatus),
		HikesThisMonth:     int64(fam.HikesThisMonth),
		UnitSystem:         fam.UnitSystem,
		TotalXP:            int64(fam.TotalXP),
		CurrentLevel:       1,
		CreatedAt:          fam.CreatedAt,
		UpdatedAt:          fam.UpdatedAt,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("%w: %s", ErrConflict, fam.ID)
		}
		return fmt.Errorf("creating family: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) GetByID(ctx context.Context, familyID string) (Family, error) {
	snap, err := r.families().Doc(familyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Family{}, fmt.Errorf("%w: %s", ErrNotFound, familyID)
		}
		return Family{}, fmt.Errorf("getting family: %w", err)
	}

	var doc familyDoc
	if err := snap.DataTo(&doc); err != nil {
		return Family{}, fmt.Errorf("decoding family %s: %w", familyID, err)
	}
	return familyFromDoc(snap.Ref.ID, doc), nil
}

func (r *FirestoreRepository) GetByInviteCode(ctx context.Context, code string) (Family, error) {
	return r.queryOne(ctx, r.families().Where("invite_code", "==", code).Limit(1), code)
}

func (r *FirestoreRepository) GetByStripeSubscription(ctx context.Context, subscriptionID string) (Family, error) {
	return r.queryOne(ctx, r.families().Where("stripe_subscription_id", "==", subscriptionID).Limit(1), subscriptionID)
}

func (r *FirestoreRepository) queryOne(ctx context.Context, q firestore.Query, key string) (Family, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return Family{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return Family{}, fmt.Errorf("querying families: %w", err)
	}

	var doc familyDoc
	if err := snap.DataTo(&doc); err != nil {
		return Family{}, fmt.Errorf("decoding family %s: %w", snap.Ref.ID, err)
	}
	return familyFromDoc(snap.Ref.ID, doc), nil
}

func (r *FirestoreRepository) AddMember(ctx context.Context, familyID, userID string, updatedAt time.Time) error {
	_, err := r.families().Doc(familyID).Update(ctx, []firestore.Update{
		{Path: "member_user_ids", Value: firestore.ArrayUnion(userID)},
		{Path: "updated_at", Value: updatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, familyID)
		}
		return fmt.Errorf("adding member: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) LinkUser(ctx context.Context, userID, familyID, role string) error {
	_, err := r.client.Collection(usersCollection).Doc(userID).Set(ctx, userDoc{
		FamilyID: familyID,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("linking user: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FamilyIDForUser(ctx context.Context, userID string) (string, error) {
	snap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("%w: %s", ErrNoFamily, userID)
		}
		return "", fmt.Errorf("getting user link: %w", err)
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return "", fmt.Errorf("decoding user link %s: %w", userID, err)
	}
	if doc.FamilyID == "" {
		return "", fmt.Errorf("%w: %s", ErrNoFamily, userID)
	}
	return doc.FamilyID, nil
}

func (r *FirestoreRepository) UpdatePreferences(ctx context.Context, familyID, unitSystem string, updatedAt time.Time) error {
	_, err := r.families().Doc(familyID).Update(ctx, []firestore.Update{
		{Path: "unit_system", Value: unitSystem},
		{Path: "updated_at", Value: updatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, familyID)
		}
		return fmt.Errorf("updating preferences: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) SetInviteCode(ctx context.Context, familyID, code string, updatedAt time.Time) error {
	_, err := r.families().Doc(familyID).Update(ctx, []firestore.Update{
		{Path: "invite_code", Value: code},
		{Path: "updated_at", Value: updatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, familyID)
		}
		return fmt.Errorf("setting invite code: %w", err)
	}
	return nil
}

// IncrementMonthlyHikes runs in a transaction so the counter never dips below
// zero when a delete races a reset.
func (r *FirestoreRepository) IncrementMonthlyHikes(ctx context.Context, familyID string, delta int) error {
	ref := r.families().Doc(familyID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, familyID)
			}
			return err
		}

		var doc familyDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("decoding family %s: %w", familyID, err)
		}

		count := int(doc.HikesThisMonth) + delta
		if count < 0 {
			count = 0
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "hikes_this_month", Value: count},
		})
	})
}

func (r *FirestoreRepository) ResetAllMonthlyHikes(ctx context.Context) (int, error) {
	iter := r.families().Where("hikes_this_month", ">", 0).Documents(ctx)
	defer iter.Stop()

	reset := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return reset, fmt.Errorf("listing families: %w", err)
		}

		if _, err := snap.Ref.Update(ctx, []firestore.Update{
			{Path: "hikes_this_month", Value: 0},
		}); err != nil {
			return reset, fmt.Errorf("resetting family %s: %w", snap.Ref.ID, err)
		}
		reset++
	}
	return reset, nil
}

func (r *FirestoreRepository) SetSubscription(ctx context.Context, familyID string, subStatus SubscriptionStatus, customerID, subscriptionID string, updatedAt time.Time) error {
	_, err := r.families().Doc(familyID).Update(ctx, []firestore.Update{
		{Path: "subscription_status", Value: string(subStatus)},
		{Path: "stripe_customer_id", Value: customerID},
		{Path: "stripe_subscription_id", Value: subscriptionID},
		{Path: "updated_at", Value: updatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, familyID)
		}
		return fmt.Errorf("setting subscription: %w", err)
	}
	return nil
}
