package billing

import (
	"context"
	"testing"
	"time"

	"github.com/evannickel/hike-together/internal/family"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type countingReader struct {
	fam   family.Family
	reads int
}

func (r *countingReader) GetByID(_ context.Context, _ string) (family.Family, error) {
	r.reads++
	return r.fam, nil
}

func TestGateFreeFamilyUnderLimit(t *testing.T) {
	reader := &countingReader{fam: family.Family{ID: "fam-1", SubscriptionStatus: family.StatusFree, HikesThisMonth: 2}}
	gate, err := NewGate(reader, 3, 16, time.Minute, &fixedClock{now: time.Now()})
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	allowance, err := gate.CanLogHike(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("CanLogHike: %v", err)
	}
	if !allowance.Allowed || allowance.Premium {
		t.Errorf("allowance = %+v, want allowed free", allowance)
	}
	if allowance.Used != 2 || allowance.Limit != 3 {
		t.Errorf("allowance = %+v, want used=2 limit=3", allowance)
	}
}

func TestGateFreeFamilyAtLimit(t *testing.T) {
	reader := &countingReader{fam: family.Family{ID: "fam-1", SubscriptionStatus: family.StatusFree, HikesThisMonth: 3}}
	gate, err := NewGate(reader, 3, 16, time.Minute, &fixedClock{now: time.Now()})
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	allowance, err := gate.CanLogHike(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("CanLogHike: %v", err)
	}
	if allowance.Allowed {
		t.Errorf("allowance = %+v, want blocked at limit", allowance)
	}
}

func TestGatePremiumCached(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	reader := &countingReader{fam: family.Family{ID: "fam-1", SubscriptionStatus: family.StatusPremium}}
	gate, err := NewGate(reader, 3, 16, time.Minute, clock)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	for i := 0; i < 3; i++ {
		allowance, err := gate.CanLogHike(context.Background(), "fam-1")
		if err != nil {
			t.Fatalf("CanLogHike #%d: %v", i, err)
		}
		if !allowance.Allowed || !allowance.Premium {
			t.Fatalf("allowance #%d = %+v, want premium", i, allowance)
		}
	}
	if reader.reads != 1 {
		t.Errorf("family read %d times, want 1 (cached)", reader.reads)
	}

	// Expired entries fall back to a fresh read.
	clock.now = clock.now.Add(2 * time.Minute)
	if _, err := gate.CanLogHike(context.Background(), "fam-1"); err != nil {
		t.Fatalf("CanLogHike after expiry: %v", err)
	}
	if reader.reads != 2 {
		t.Errorf("family read %d times after expiry, want 2", reader.reads)
	}
}

func TestGateInvalidate(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	reader := &countingReader{fam: family.Family{ID: "fam-1", SubscriptionStatus: family.StatusPremium}}
	gate, err := NewGate(reader, 3, 16, time.Minute, clock)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	if _, err := gate.CanLogHike(context.Background(), "fam-1"); err != nil {
		t.Fatalf("CanLogHike: %v", err)
	}

	// Downgrade lands via webhook: cache dropped, next check sees free status.
	reader.fam.SubscriptionStatus = family.StatusFree
	reader.fam.HikesThisMonth = 3
	gate.Invalidate("fam-1")

	allowance, err := gate.CanLogHike(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("CanLogHike after invalidate: %v", err)
	}
	if allowance.Allowed || allowance.Premium {
		t.Errorf("allowance = %+v, want blocked free after downgrade", allowance)
	}
}
