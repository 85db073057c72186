package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/evannickel/hike-together/internal/family"
)

// DefaultFreeHikeLimit is how many hikes a free family may log per month.
const DefaultFreeHikeLimit = 3

// ErrHikeLimitReached indicates the free plan's monthly allowance is used up.
var ErrHikeLimitReached = errors.New("monthly hike limit reached")

// ErrAlreadyPremium indicates the family already has an active subscription.
var ErrAlreadyPremium = errors.New("family is already premium")

// Allowance is the gate's verdict for one log attempt.
type Allowance struct {
	Allowed bool `json:"allowed"`
	Premium bool `json:"premium"`
	Used    int  `json:"used"`
	Limit   int  `json:"limit"` // 0 for premium families
}

// FamilyReader is the slice of the family store the gate needs.
type FamilyReader interface {
	GetByID(ctx context.Context, familyID string) (family.Family, error)
}

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Gate enforces the free plan's monthly hike allowance. Premium status is
// cached briefly since it only changes on webhook events; the monthly counter
// is always read fresh so free families cannot slip past the limit.
type Gate struct {
	families  FamilyReader
	cache     *lru.Cache
	ttl       time.Duration
	freeLimit int
	clock     Clock
}

type premiumEntry struct {
	expires time.Time
}

func NewGate(families FamilyReader, freeLimit, cacheSize int, ttl time.Duration, clock Clock) (*Gate, error) {
	if freeLimit <= 0 {
		freeLimit = DefaultFreeHikeLimit
	}
	if clock == nil {
		clock = realClock{}
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating entitlement cache: %w", err)
	}
	return &Gate{families: families, cache: cache, ttl: ttl, freeLimit: freeLimit, clock: clock}, nil
}

// CanLogHike reports whether the family may log another hike this month.
// A blocked attempt is not an error; callers check Allowed.
func (g *Gate) CanLogHike(ctx context.Context, familyID string) (Allowance, error) {
	now := g.clock.Now()
	if v, ok := g.cache.Get(familyID); ok {
		entry := v.(premiumEntry)
		if now.Before(entry.expires) {
			return Allowance{Allowed: true, Premium: true}, nil
		}
		g.cache.Remove(familyID)
	}

	fam, err := g.families.GetByID(ctx, familyID)
	if err != nil {
		return Allowance{}, err
	}

	if fam.Premium() {
		g.cache.Add(familyID, premiumEntry{expires: now.Add(g.ttl)})
		return Allowance{Allowed: true, Premium: true}, nil
	}

	return Allowance{
		Allowed: fam.HikesThisMonth < g.freeLimit,
		Used:    fam.HikesThisMonth,
		Limit:   g.freeLimit,
	}, nil
}

// Invalidate drops the cached premium marker after a subscription change.
func (g *Gate) Invalidate(familyID string) {
	g.cache.Remove(familyID)
}
