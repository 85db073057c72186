package family

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// inviteCodeAlphabet omits 0/O/1/I/L so codes survive being read aloud.
const inviteCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const inviteCodeLength = 6

// CodeGenerator produces shareable invite codes.
type CodeGenerator interface {
	NewCode() string
}

// Service implements family lifecycle: creation, invites, and preferences.
type Service struct {
	repo  Repository
	clock Clock
	ids   IDGenerator
	codes CodeGenerator
}

func NewService(repo Repository, clock Clock, ids IDGenerator, codes CodeGenerator) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if ids == nil {
		ids = uuidGenerator{}
	}
	if codes == nil {
		codes = randomCodeGenerator{}
	}
	return &Service{repo: repo, clock: clock, ids: ids, codes: codes}
}

// Create starts a new family with the caller as owner and sole member.
func (s *Service) Create(ctx context.Context, userID, name string) (Family, error) {
	name = strings.TrimSpace(name)
	if userID == "" {
		return Family{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if name == "" {
		return Family{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	now := s.clock.Now()
	fam := Family{
		ID:                 s.ids.NewID(),
		Name:               name,
		InviteCode:         s.codes.NewCode(),
		OwnerUserID:        userID,
		MemberUserIDs:      []string{userID},
		SubscriptionStatus: StatusFree,
		UnitSystem:         "imperial",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, fam); err != nil {
		return Family{}, err
	}
	if err := s.repo.LinkUser(ctx, userID, fam.ID, "owner"); err != nil {
		return Family{}, fmt.Errorf("linking owner: %w", err)
	}
	return fam, nil
}

// Join adds the caller to the family behind an invite code. Joining a family
// the user already belongs to is a no-op that returns the family.
func (s *Service) Join(ctx context.Context, userID, code string) (Family, error) {
	if userID == "" {
		return Family{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Family{}, fmt.Errorf("%w: invite code is required", ErrInvalidInput)
	}

	fam, err := s.repo.GetByInviteCode(ctx, code)
	if err != nil {
		return Family{}, err
	}

	for _, id := range fam.MemberUserIDs {
		if id == userID {
			return fam, nil
		}
	}

	now := s.clock.Now()
	if err := s.repo.AddMember(ctx, fam.ID, userID, now); err != nil {
		return Family{}, err
	}
	if err := s.repo.LinkUser(ctx, userID, fam.ID, "member"); err != nil {
		return Family{}, fmt.Errorf("linking member: %w", err)
	}

	fam.MemberUserIDs = append(fam.MemberUserIDs, userID)
	fam.UpdatedAt = now
	return fam, nil
}

// GetForUser resolves the caller's family via the membership link.
func (s *Service) GetForUser(ctx context.Context, userID string) (Family, error) {
	familyID, err := s.repo.FamilyIDForUser(ctx, userID)
	if err != nil {
		return Family{}, err
	}
	return s.repo.GetByID(ctx, familyID)
}

func (s *Service) Get(ctx context.Context, familyID string) (Family, error) {
	return s.repo.GetByID(ctx, familyID)
}

// UpdatePreferences changes the family's display unit system.
func (s *Service) UpdatePreferences(ctx context.Context, familyID, unitSystem string) (Family, error) {
	if !validUnitSystem(unitSystem) {
		return Family{}, fmt.Errorf("%w: unit_system must be one of: %s", ErrInvalidInput, strings.Join(ValidUnitSystems, ", "))
	}
	if err := s.repo.UpdatePreferences(ctx, familyID, unitSystem, s.clock.Now()); err != nil {
		return Family{}, err
	}
	return s.repo.GetByID(ctx, familyID)
}

// EnsureInviteCode backfills a code for families created before codes existed.
func (s *Service) EnsureInviteCode(ctx context.Context, familyID string) (Family, error) {
	fam, err := s.repo.GetByID(ctx, familyID)
	if err != nil {
		return Family{}, err
	}
	if fam.InviteCode != "" {
		return fam, nil
	}

	code := s.codes.NewCode()
	if err := s.repo.SetInviteCode(ctx, familyID, code, s.clock.Now()); err != nil {
		return Family{}, err
	}
	fam.InviteCode = code
	return fam, nil
}

// ResetMonthlyCounters zeroes every family's monthly hike count. Run at the
// start of each calendar month.
func (s *Service) ResetMonthlyCounters(ctx context.Context) (int, error) {
	return s.repo.ResetAllMonthlyHikes(ctx)
}

// RequireOwner returns the family only when the caller owns it.
func (s *Service) RequireOwner(ctx context.Context, familyID, userID string) (Family, error) {
	fam, err := s.repo.GetByID(ctx, familyID)
	if err != nil {
		return Family{}, err
	}
	if fam.OwnerUserID != userID {
		return Family{}, ErrNotOwner
	}
	return fam, nil
}

// ErrNotOwner indicates the caller is a member but not the family owner.
var ErrNotOwner = errors.New("caller is not the family owner")

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type randomCodeGenerator struct{}

func (randomCodeGenerator) NewCode() string {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a UUID slice.
		return strings.ToUpper(uuid.NewString()[:inviteCodeLength])
	}
	code := make([]byte, inviteCodeLength)
	for i, b := range buf {
		code[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(code)
}
