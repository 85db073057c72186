package family

import (
	"context"
	"errors"
	"time"
)

// SubscriptionStatus is the family's billing plan.
type SubscriptionStatus string

const (
	StatusFree    SubscriptionStatus = "free"
	StatusPremium SubscriptionStatus = "premium"
)

// Family is the unit of membership; hikes, badges, and XP all hang off it.
type Family struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	InviteCode           string             `json:"invite_code"`
	OwnerUserID          string             `json:"owner_user_id"`
	MemberUserIDs        []string           `json:"member_user_ids"`
	SubscriptionStatus   SubscriptionStatus `json:"subscription_status"`
	StripeCustomerID     string             `json:"-"`
	StripeSubscriptionID string             `json:"-"`
	HikesThisMonth       int                `json:"hikes_this_month"`
	UnitSystem           string             `json:"unit_system"`
	TotalXP              int                `json:"total_xp"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// Premium reports whether the family is on the paid plan.
func (f Family) Premium() bool {
	return f.SubscriptionStatus == StatusPremium
}

// ValidUnitSystems defines the display preferences a family may choose.
var ValidUnitSystems = []string{
	"imperial",
	"metric",
}

func validUnitSystem(s string) bool {
	for _, v := range ValidUnitSystems {
		if v == s {
			return true
		}
	}
	return false
}

// Repository encapsulates persistence for families and their membership links.
type Repository interface {
	Create(ctx context.Context, fam Family) error
	GetByID(ctx context.Context, familyID string) (Family, error)
	GetByInviteCode(ctx context.Context, code string) (Family, error)
	GetByStripeSubscription(ctx context.Context, subscriptionID string) (Family, error)
	AddMember(ctx context.Context, familyID, userID string, updatedAt time.Time) error
	LinkUser(ctx context.Context, userID, familyID, role string) error
	FamilyIDForUser(ctx context.Context, userID string) (string, error)
	UpdatePreferences(ctx context.Context, familyID, unitSystem string, updatedAt time.Time) error
	SetInviteCode(ctx context.Context, familyID, code string, updatedAt time.Time) error
	IncrementMonthlyHikes(ctx context.Context, familyID string, delta int) error
	ResetAllMonthlyHikes(ctx context.Context) (int, error)
	SetSubscription(ctx context.Context, familyID string, status SubscriptionStatus, customerID, subscriptionID string, updatedAt time.Time) error
}

// ErrNotFound indicates the family does not exist.
var ErrNotFound = errors.New("family not found")

// ErrConflict indicates a duplicate identifier collision.
var ErrConflict = errors.New("family already exists")

// ErrInvalidInput indicates the provided data failed validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoFamily indicates the user has not created or joined a family yet.
var ErrNoFamily = errors.New("user has no family")

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifiers for new documents.
type IDGenerator interface {
	NewID() string
}
