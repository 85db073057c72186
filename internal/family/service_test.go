package family

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return "fam-" + string(rune('0'+s.n))
}

type fixedCodes struct{ code string }

func (c fixedCodes) NewCode() string { return c.code }

func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	now := time.Date(2025, time.July, 12, 10, 0, 0, 0, time.UTC)
	return NewService(repo, fixedClock{now: now}, &seqIDs{}, fixedCodes{code: "TRAILX"}), repo
}

func TestCreateFamily(t *testing.T) {
	svc, _ := newTestService()

	fam, err := svc.Create(context.Background(), "user-1", "  The Nickels  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if fam.Name != "The Nickels" {
		t.Errorf("Name = %q, want trimmed", fam.Name)
	}
	if fam.InviteCode != "TRAILX" {
		t.Errorf("InviteCode = %q", fam.InviteCode)
	}
	if fam.OwnerUserID != "user-1" || len(fam.MemberUserIDs) != 1 {
		t.Errorf("owner not sole member: %+v", fam)
	}
	if fam.SubscriptionStatus != StatusFree {
		t.Errorf("SubscriptionStatus = %q, want free", fam.SubscriptionStatus)
	}
	if fam.UnitSystem != "imperial" {
		t.Errorf("UnitSystem = %q, want imperial default", fam.UnitSystem)
	}

	got, err := svc.GetForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetForUser: %v", err)
	}
	if got.ID != fam.ID {
		t.Errorf("GetForUser resolved %s, want %s", got.ID, fam.ID)
	}
}

func TestCreateFamilyValidation(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), "", "Hikers"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing user error = %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name error = %v", err)
	}
}

func TestJoinFamily(t *testing.T) {
	svc, _ := newTestService()

	fam, err := svc.Create(context.Background(), "user-1", "Hikers")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Codes are matched case-insensitively with surrounding space ignored.
	joined, err := svc.Join(context.Background(), "user-2", "  trailx ")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if joined.ID != fam.ID {
		t.Errorf("joined %s, want %s", joined.ID, fam.ID)
	}
	if len(joined.MemberUserIDs) != 2 {
		t.Errorf("members = %v, want 2", joined.MemberUserIDs)
	}

	// Joining again is idempotent.
	again, err := svc.Join(context.Background(), "user-2", "TRAILX")
	if err != nil {
		t.Fatalf("repeat Join: %v", err)
	}
	if len(again.MemberUserIDs) != 2 {
		t.Errorf("repeat join changed membership: %v", again.MemberUserIDs)
	}

	got, err := svc.GetForUser(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("GetForUser: %v", err)
	}
	if got.ID != fam.ID {
		t.Errorf("member link resolved %s, want %s", got.ID, fam.ID)
	}
}

func TestJoinUnknownCode(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Join(context.Background(), "user-2", "NOSUCH"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown code error = %v, want ErrNotFound", err)
	}
}

func TestGetForUserWithoutFamily(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetForUser(context.Background(), "stranger"); !errors.Is(err, ErrNoFamily) {
		t.Errorf("error = %v, want ErrNoFamily", err)
	}
}

func TestUpdatePreferences(t *testing.T) {
	svc, _ := newTestService()

	fam, err := svc.Create(context.Background(), "user-1", "Hikers")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdatePreferences(context.Background(), fam.ID, "metric")
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if updated.UnitSystem != "metric" {
		t.Errorf("UnitSystem = %q, want metric", updated.UnitSystem)
	}

	if _, err := svc.UpdatePreferences(context.Background(), fam.ID, "furlongs"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid unit system error = %v", err)
	}
}

func TestEnsureInviteCode(t *testing.T) {
	repo := NewMemoryRepository()
	now := time.Date(2025, time.July, 12, 10, 0, 0, 0, time.UTC)
	svc := NewService(repo, fixedClock{now: now}, &seqIDs{}, nil)

	fam := Family{ID: "legacy", Name: "Legacy", OwnerUserID: "user-1", MemberUserIDs: []string{"user-1"}, SubscriptionStatus: StatusFree}
	if err := repo.Create(context.Background(), fam); err != nil {
		t.Fatalf("seeding family: %v", err)
	}

	got, err := svc.EnsureInviteCode(context.Background(), "legacy")
	if err != nil {
		t.Fatalf("EnsureInviteCode: %v", err)
	}
	if len(got.InviteCode) != inviteCodeLength {
		t.Fatalf("InviteCode = %q, want %d characters", got.InviteCode, inviteCodeLength)
	}
	for _, ch := range got.InviteCode {
		if !strings.ContainsRune(inviteCodeAlphabet, ch) {
			t.Errorf("invite code contains %q outside the alphabet", ch)
		}
	}

	// A second call keeps the existing code.
	again, err := svc.EnsureInviteCode(context.Background(), "legacy")
	if err != nil {
		t.Fatalf("repeat EnsureInviteCode: %v", err)
	}
	if again.InviteCode != got.InviteCode {
		t.Errorf("code changed from %q to %q", got.InviteCode, again.InviteCode)
	}
}

func TestResetMonthlyCounters(t *testing.T) {
	svc, repo := newTestService()

	fam, err := svc.Create(context.Background(), "user-1", "Hikers")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := repo.IncrementMonthlyHikes(context.Background(), fam.ID, 1); err != nil {
			t.Fatalf("IncrementMonthlyHikes: %v", err)
		}
	}

	reset, err := svc.ResetMonthlyCounters(context.Background())
	if err != nil {
		t.Fatalf("ResetMonthlyCounters: %v", err)
	}
	if reset != 1 {
		t.Errorf("reset %d families, want 1", reset)
	}

	got, err := svc.Get(context.Background(), fam.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.HikesThisMonth != 0 {
		t.Errorf("HikesThisMonth = %d, want 0", got.HikesThisMonth)
	}
}

func TestRequireOwner(t *testing.T) {
	svc, _ := newTestService()

	fam, err := svc.Create(context.Background(), "user-1", "Hikers")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Join(context.Background(), "user-2", "TRAILX"); err != nil {
		t.Fatalf("Join: %v", err)
	}

	if _, err := svc.RequireOwner(context.Background(), fam.ID, "user-1"); err != nil {
		t.Errorf("owner rejected: %v", err)
	}
	if _, err := svc.RequireOwner(context.Background(), fam.ID, "user-2"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("member error = %v, want ErrNotOwner", err)
	}
}
