package progress

import (
	"context"
	"errors"
	"time"

	"github.com/evannickel/hike-together/internal/badge"
)

// EarnedBadge is a badge the family has unlocked, stored as its own document
// so awarding is naturally idempotent.
type EarnedBadge struct {
	BadgeID  string         `json:"badge_id"`
	Name     string         `json:"name"`
	Icon     string         `json:"icon"`
	Category badge.Category `json:"category"`
	Manual   bool           `json:"manual"`
	EarnedAt time.Time      `json:"earned_at"`
}

// FamilyProgress is the family's accumulated XP and derived level.
type FamilyProgress struct {
	TotalXP int `json:"total_xp"`
	Level   int `json:"level"`
}

// Repository encapsulates persistence for earned badges and the XP total.
type Repository interface {
	ListEarnedBadges(ctx context.Context, familyID string) ([]EarnedBadge, error)
	// RecordBadge stores an earned badge. It reports alreadyEarned instead of
	// failing when the badge document exists, so concurrent evaluations of the
	// same history converge on one award.
	RecordBadge(ctx context.Context, familyID string, earned EarnedBadge) (alreadyEarned bool, err error)
	// AddXP atomically adds delta to the family's total and returns the new value.
	AddXP(ctx context.Context, familyID string, delta int) (total int, err error)
	GetProgress(ctx context.Context, familyID string) (FamilyProgress, error)
}

// ErrNotFound indicates no progress record exists for the family.
var ErrNotFound = errors.New("family progress not found")

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}
