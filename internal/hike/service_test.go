package hike

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evannickel/hike-together/internal/badge"
	"github.com/evannickel/hike-together/internal/billing"
	"github.com/evannickel/hike-together/internal/progress"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return "hike-" + string(rune('0'+s.n))
}

type fakeCounter struct {
	increments []int
	err        error
}

func (c *fakeCounter) IncrementMonthlyHikes(_ context.Context, _ string, delta int) error {
	if c.err != nil {
		return c.err
	}
	c.increments = append(c.increments, delta)
	return nil
}

type fakeGate struct {
	allowance billing.Allowance
	err       error
}

func (g *fakeGate) CanLogHike(_ context.Context, _ string) (billing.Allowance, error) {
	return g.allowance, g.err
}

type fakeAwards struct {
	lastHistory []badge.Hike
	lastLogged  badge.Hike
	award       progress.Award
	err         error
}

func (a *fakeAwards) ApplyHike(_ context.Context, _ string, history []badge.Hike, logged badge.Hike) (progress.Award, error) {
	a.lastHistory = history
	a.lastLogged = logged
	return a.award, a.err
}

func newTestService(gate *fakeGate) (*Service, *MemoryRepository, *fakeCounter, *fakeAwards, time.Time) {
	repo := NewMemoryRepository()
	counter := &fakeCounter{}
	awards := &fakeAwards{award: progress.Award{XPEarned: 110, TotalXP: 110, Level: badge.LevelFor(110)}}
	now := time.Date(2025, time.July, 12, 10, 0, 0, 0, time.UTC)
	svc := NewService(repo, counter, gate, awards, fixedClock{now: now}, &seqIDs{})
	return svc, repo, counter, awards, now
}

func allowAll() *fakeGate {
	return &fakeGate{allowance: billing.Allowance{Allowed: true, Premium: true}}
}

func TestLogHike(t *testing.T) {
	svc, repo, counter, awards, now := newTestService(allowAll())

	result, err := svc.Log(context.Background(), CreateInput{
		FamilyID:      "fam-1",
		UserID:        "user-1",
		Date:          now,
		Distance:      3.5,
		ElevationGain: 400,
		Location:      "Eagle Peak",
		Difficulty:    "moderate",
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if result.Hike.ID == "" || result.Hike.LoggedByUserID != "user-1" {
		t.Errorf("hike = %+v", result.Hike)
	}
	if !result.Hike.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", result.Hike.CreatedAt, now)
	}

	stored, err := repo.GetByID(context.Background(), "fam-1", result.Hike.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Distance != 3.5 || stored.Location != "Eagle Peak" {
		t.Errorf("stored = %+v", stored)
	}

	if len(counter.increments) != 1 || counter.increments[0] != 1 {
		t.Errorf("counter increments = %v, want [1]", counter.increments)
	}
	if len(awards.lastHistory) != 1 {
		t.Errorf("awards saw %d history hikes, want 1", len(awards.lastHistory))
	}
	if awards.lastLogged.Distance != 3.5 || awards.lastLogged.ElevationGain != 400 {
		t.Errorf("awards saw logged hike %+v", awards.lastLogged)
	}
	if result.Award.XPEarned != 110 {
		t.Errorf("Award.XPEarned = %d, want passthrough 110", result.Award.XPEarned)
	}
}

func TestLogHikeValidation(t *testing.T) {
	svc, _, _, _, now := newTestService(allowAll())

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"missing family", CreateInput{UserID: "u", Date: now}},
		{"missing user", CreateInput{FamilyID: "f", Date: now}},
		{"missing date", CreateInput{FamilyID: "f", UserID: "u"}},
		{"negative distance", CreateInput{FamilyID: "f", UserID: "u", Date: now, Distance: -1}},
		{"negative elevation", CreateInput{FamilyID: "f", UserID: "u", Date: now, ElevationGain: -5}},
		{"bad difficulty", CreateInput{FamilyID: "f", UserID: "u", Date: now, Difficulty: "brutal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Log(context.Background(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLogHikeBlockedAtLimit(t *testing.T) {
	gate := &fakeGate{allowance: billing.Allowance{Allowed: false, Used: 3, Limit: 3}}
	svc, repo, counter, _, now := newTestService(gate)

	_, err := svc.Log(context.Background(), CreateInput{FamilyID: "fam-1", UserID: "user-1", Date: now})
	if !errors.Is(err, billing.ErrHikeLimitReached) {
		t.Fatalf("error = %v, want ErrHikeLimitReached", err)
	}

	records, err := repo.ListByFamily(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("ListByFamily: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("blocked log stored %d hikes", len(records))
	}
	if len(counter.increments) != 0 {
		t.Errorf("blocked log touched the counter: %v", counter.increments)
	}
}

func TestUpdateHike(t *testing.T) {
	svc, _, _, _, now := newTestService(allowAll())

	result, err := svc.Log(context.Background(), CreateInput{FamilyID: "fam-1", UserID: "user-1", Date: now, Distance: 2})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	newDistance := 4.2
	updated, err := svc.Update(context.Background(), "fam-1", result.Hike.ID, UpdateInput{Distance: &newDistance})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Distance != 4.2 {
		t.Errorf("Distance = %v, want 4.2", updated.Distance)
	}
	if updated.Date != result.Hike.Date {
		t.Errorf("untouched field changed: %v", updated.Date)
	}

	bad := -1.0
	if _, err := svc.Update(context.Background(), "fam-1", result.Hike.ID, UpdateInput{Distance: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative patch error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Update(context.Background(), "fam-1", "missing", UpdateInput{Distance: &newDistance}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing hike error = %v, want ErrNotFound", err)
	}
}

func TestDeleteHike(t *testing.T) {
	svc, _, counter, _, now := newTestService(allowAll())

	result, err := svc.Log(context.Background(), CreateInput{FamilyID: "fam-1", UserID: "user-1", Date: now})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if err := svc.Delete(context.Background(), "fam-1", result.Hike.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "fam-1", result.Hike.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted hike still readable: %v", err)
	}
	if len(counter.increments) != 2 || counter.increments[1] != -1 {
		t.Errorf("counter increments = %v, want [1 -1]", counter.increments)
	}

	if err := svc.Delete(context.Background(), "fam-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing hike error = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	svc, _, _, _, now := newTestService(allowAll())

	inputs := []CreateInput{
		{FamilyID: "fam-1", UserID: "user-1", Date: now, Distance: 3, ElevationGain: 200},
		{FamilyID: "fam-1", UserID: "user-1", Date: now.AddDate(0, 0, -1), Distance: 2, ElevationGain: 100},
	}
	for _, input := range inputs {
		if _, err := svc.Log(context.Background(), input); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	stats, err := svc.Stats(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalHikes != 2 || stats.TotalMiles != 5 || stats.TotalFeet != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
}
