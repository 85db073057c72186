package family

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests and local development.
type MemoryRepository struct {
	mu       sync.RWMutex
	families map[string]Family
	users    map[string]userDoc
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		families: make(map[string]Family),
		users:    make(map[string]userDoc),
	}
}

func (r *MemoryRepository) Create(_ context.Context, fam Family) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.families[fam.ID]; exists {
		return fmt.Errorf("%w: %s", ErrConflict, fam.ID)
	}
	r.families[fam.ID] = fam
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, familyID string) (Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(familyID)
}

func (r *MemoryRepository) getLocked(familyID string) (Family, error) {
	fam, ok := r.families[familyID]
	if !ok {
		return Family{}, fmt.Errorf("%w: %s", ErrNotFound, familyID)
	}
	return fam, nil
}

func (r *MemoryRepository) GetByInviteCode(_ context.Context, code string) (Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, fam := range r.families {
		if fam.InviteCode == code {
			return fam, nil
		}
	}
	return Family{}, fmt.Errorf("%w: invite code %s", ErrNotFound, code)
}

func (r *MemoryRepository) GetByStripeSubscription(_ context.Context, subscriptionID string) (Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, fam := range r.families {
		if fam.StripeSubscriptionID == subscriptionID {
			return fam, nil
		}
	}
	return Family{}, fmt.Errorf("%w: subscription %s", ErrNotFound, subscriptionID)
}

func (r *MemoryRepository) AddMember(_ context.Context, familyID, userID string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, err := r.getLocked(familyID)
	if err != nil {
		return err
	}
	for _, id := range fam.MemberUserIDs {
		if id == userID {
			return nil
		}
	}
	fam.MemberUserIDs = append(fam.MemberUserIDs, userID)
	fam.UpdatedAt = updatedAt
	r.families[familyID] = fam
	return nil
}

func (r *MemoryRepository) LinkUser(_ context.Context, userID, familyID, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = userDoc{FamilyID: familyID, Role: role}
	return nil
}

func (r *MemoryRepository) FamilyIDForUser(_ context.Context, userID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.users[userID]
	if !ok || link.FamilyID == "" {
		return "", fmt.Errorf("%w: %s", ErrNoFamily, userID)
	}
	return link.FamilyID, nil
}

func (r *MemoryRepository) UpdatePreferences(_ context.Context, familyID, unitSystem string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, err := r.getLocked(familyID)
	if err != nil {
		return err
	}
	fam.UnitSystem = unitSystem
	fam.UpdatedAt = updatedAt
	r.families[familyID] = fam
	return nil
}

func (r *MemoryRepository) SetInviteCode(_ context.Context, familyID, code string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, err := r.getLocked(familyID)
	if err != nil {
		return err
	}
	fam.InviteCode = code
	fam.UpdatedAt = updatedAt
	r.families[familyID] = fam
	return nil
}

func (r *MemoryRepository) IncrementMonthlyHikes(_ context.Context, familyID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, err := r.getLocked(familyID)
	if err != nil {
		return err
	}
	fam.HikesThisMonth += delta
	if fam.HikesThisMonth < 0 {
		fam.HikesThisMonth = 0
	}
	r.families[familyID] = fam
	return nil
}

func (r *MemoryRepository) ResetAllMonthlyHikes(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reset := 0
	for id, fam := range r.families {
		if fam.HikesThisMonth > 0 {
			fam.HikesThisMonth = 0
			r.families[id] = fam
			reset++
		}
	}
	return reset, nil
}

func (r *MemoryRepository) SetSubscription(_ context.Context, familyID string, subStatus SubscriptionStatus, customerID, subscriptionID string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, err := r.getLocked(familyID)
	if err != nil {
		return err
	}
	fam.SubscriptionStatus = subStatus
	fam.StripeCustomerID = customerID
	fam.StripeSubscriptionID = subscriptionID
	fam.UpdatedAt = updatedAt
	r.families[familyID] = fam
	return nil
}
