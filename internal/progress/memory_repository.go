package progress

import (
	"context"
	"sort"
	"sync"

	"github.com/evannickel/hike-together/internal/badge"
)

// MemoryRepository is an in-memory Repository for tests and local development.
type MemoryRepository struct {
	mu     sync.RWMutex
	badges map[string]map[string]EarnedBadge // familyID -> badgeID -> earned
	xp     map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		badges: make(map[string]map[string]EarnedBadge),
		xp:     make(map[string]int),
	}
}

// Seed sets a family's starting XP total.
func (r *MemoryRepository) Seed(familyID string, totalXP int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.xp[familyID] = totalXP
}

func (r *MemoryRepository) ListEarnedBadges(_ context.Context, familyID string) ([]EarnedBadge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	earned := make([]EarnedBadge, 0, len(r.badges[familyID]))
	for _, e := range r.badges[familyID] {
		earned = append(earned, e)
	}
	sort.Slice(earned, func(i, j int) bool { return earned[i].BadgeID < earned[j].BadgeID })
	return earned, nil
}

func (r *MemoryRepository) RecordBadge(_ context.Context, familyID string, earned EarnedBadge) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	family, ok := r.badges[familyID]
	if !ok {
		family = make(map[string]EarnedBadge)
		r.badges[familyID] = family
	}
	if _, exists := family[earned.BadgeID]; exists {
		return true, nil
	}
	family[earned.BadgeID] = earned
	return false, nil
}

// AddXP starts unseen families at zero, matching how the family document
// already exists before any XP accrues.
func (r *MemoryRepository) AddXP(_ context.Context, familyID string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.xp[familyID] + delta
	if total < 0 {
		total = 0
	}
	r.xp[familyID] = total
	return total, nil
}

func (r *MemoryRepository) GetProgress(_ context.Context, familyID string) (FamilyProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := r.xp[familyID]
	return FamilyProgress{TotalXP: total, Level: badge.LevelFor(total).Level}, nil
}
