package hike

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evannickel/hike-together/internal/badge"
	"github.com/evannickel/hike-together/internal/billing"
	"github.com/evannickel/hike-together/internal/progress"
)

// Counter tracks the family's monthly hike count alongside the hike documents.
type Counter interface {
	IncrementMonthlyHikes(ctx context.Context, familyID string, delta int) error
}

// Gate decides whether the family's plan allows logging another hike.
type Gate interface {
	CanLogHike(ctx context.Context, familyID string) (billing.Allowance, error)
}

// Awards runs badge evaluation and XP accrual after a hike is logged.
type Awards interface {
	ApplyHike(ctx context.Context, familyID string, history []badge.Hike, logged badge.Hike) (progress.Award, error)
}

// Service implements hike logging and the post-log award pipeline.
type Service struct {
	repo    Repository
	counter Counter
	gate    Gate
	awards  Awards
	clock   Clock
	ids     IDGenerator
}

func NewService(repo Repository, counter Counter, gate Gate, awards Awards, clock Clock, ids IDGenerator) *Service {
	if clock == nil {
		clock = RealClock{}
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Service{repo: repo, counter: counter, gate: gate, awards: awards, clock: clock, ids: ids}
}

// LogResult bundles the stored hike with everything it unlocked.
type LogResult struct {
	Hike  Record         `json:"hike"`
	Award progress.Award `json:"award"`
}

// Log validates and stores a new hike, bumps the monthly counter, and runs
// badge evaluation over the family's full history.
func (s *Service) Log(ctx context.Context, input CreateInput) (LogResult, error) {
	if err := input.Validate(); err != nil {
		return LogResult{}, err
	}

	allowance, err := s.gate.CanLogHike(ctx, input.FamilyID)
	if err != nil {
		return LogResult{}, fmt.Errorf("checking hike allowance: %w", err)
	}
	if !allowance.Allowed {
		return LogResult{}, fmt.Errorf("%w: free plan allows %d hikes per month", billing.ErrHikeLimitReached, allowance.Limit)
	}

	now := s.clock.Now()
	record := Record{
		ID:             s.ids.NewID(),
		FamilyID:       input.FamilyID,
		Date:           input.Date,
		Distance:       input.Distance,
		ElevationGain:  input.ElevationGain,
		Location:       input.Location,
		Difficulty:     input.Difficulty,
		Notes:          input.Notes,
		LoggedByUserID: input.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return LogResult{}, err
	}
	if err := s.counter.IncrementMonthlyHikes(ctx, input.FamilyID, 1); err != nil {
		return LogResult{}, fmt.Errorf("updating monthly counter: %w", err)
	}

	history, err := s.repo.ListByFamily(ctx, input.FamilyID)
	if err != nil {
		return LogResult{}, fmt.Errorf("loading hike history: %w", err)
	}

	award, err := s.awards.ApplyHike(ctx, input.FamilyID, Samples(history), record.Sample())
	if err != nil {
		return LogResult{}, fmt.Errorf("applying awards: %w", err)
	}

	return LogResult{Hike: record, Award: award}, nil
}

func (s *Service) Get(ctx context.Context, familyID, hikeID string) (Record, error) {
	return s.repo.GetByID(ctx, familyID, hikeID)
}

func (s *Service) List(ctx context.Context, familyID string) ([]Record, error) {
	return s.repo.ListByFamily(ctx, familyID)
}

// Update patches an existing hike. Edits never retract earned badges; the
// next evaluation simply runs over the corrected history.
func (s *Service) Update(ctx context.Context, familyID, hikeID string, updates UpdateInput) (Record, error) {
	if err := updates.Validate(); err != nil {
		return Record{}, err
	}
	return s.repo.Update(ctx, familyID, hikeID, updates, s.clock.Now())
}

// Delete removes a hike and releases its slot in the monthly allowance.
func (s *Service) Delete(ctx context.Context, familyID, hikeID string) error {
	if err := s.repo.Delete(ctx, familyID, hikeID); err != nil {
		return err
	}
	if err := s.counter.IncrementMonthlyHikes(ctx, familyID, -1); err != nil {
		return fmt.Errorf("updating monthly counter: %w", err)
	}
	return nil
}

// Stats aggregates the family's hike history into badge-evaluation totals.
func (s *Service) Stats(ctx context.Context, familyID string) (badge.Stats, error) {
	records, err := s.repo.ListByFamily(ctx, familyID)
	if err != nil {
		return badge.Stats{}, err
	}
	return badge.ComputeStats(Samples(records), s.clock.Now()), nil
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// UUIDGenerator issues time-ordered identifiers for new documents.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
