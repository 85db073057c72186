package progress

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/evannickel/hike-together/internal/badge"
)

// Service evaluates badge rules against hike history and keeps the family's
// earned badges and XP total current.
type Service struct {
	catalog      *badge.Catalog
	repo         Repository
	clock        Clock
	awardBadgeXP bool
}

// NewService wires the badge catalog to the progress store. When awardBadgeXP
// is set, each newly earned badge grants a flat XP bonus on top of hike XP.
func NewService(catalog *badge.Catalog, repo Repository, clock Clock, awardBadgeXP bool) *Service {
	return &Service{catalog: catalog, repo: repo, clock: clock, awardBadgeXP: awardBadgeXP}
}

// Award summarizes what a single logged hike unlocked.
type Award struct {
	NewBadges     []badge.Definition `json:"new_badges"`
	XPEarned      int                `json:"xp_earned"`
	TotalXP       int                `json:"total_xp"`
	Level         badge.Level        `json:"level"`
	LeveledUp     bool               `json:"leveled_up"`
	XPToNextLevel int                `json:"xp_to_next_level"` // 0 at the top level
}

// ApplyHike re-evaluates the full history after a hike is logged, persists any
// newly earned automatic badges, and credits XP for the logged hike.
func (s *Service) ApplyHike(ctx context.Context, familyID string, history []badge.Hike, logged badge.Hike) (Award, error) {
	earnedList, err := s.repo.ListEarnedBadges(ctx, familyID)
	if err != nil {
		return Award{}, fmt.Errorf("listing earned badges: %w", err)
	}
	earned := earnedSet(earnedList)

	now := s.clock.Now()
	candidates := s.catalog.Evaluate(history, earned, now)

	newBadges := make([]badge.Definition, 0, len(candidates))
	for _, def := range candidates {
		already, err := s.repo.RecordBadge(ctx, familyID, EarnedBadge{
			BadgeID:  def.ID,
			Name:     def.Name,
			Icon:     def.Icon,
			Category: def.Category,
			EarnedAt: now,
		})
		if err != nil {
			return Award{}, fmt.Errorf("recording badge %s: %w", def.ID, err)
		}
		if !already {
			newBadges = append(newBadges, def)
		}
	}

	xp := badge.XPForHike(logged)
	if s.awardBadgeXP {
		xp += len(newBadges) * badge.XPPerBadge
	}

	total, err := s.repo.AddXP(ctx, familyID, xp)
	if err != nil {
		return Award{}, fmt.Errorf("adding xp: %w", err)
	}

	level := badge.LevelFor(total)
	previous := badge.LevelFor(total - xp)
	toNext, _ := badge.XPToNextLevel(total)

	return Award{
		NewBadges:     newBadges,
		XPEarned:      xp,
		TotalXP:       total,
		Level:         level,
		LeveledUp:     level.Level > previous.Level,
		XPToNextLevel: toNext,
	}, nil
}

// ClaimResult describes a successfully claimed manual badge.
type ClaimResult struct {
	Badge    badge.Definition `json:"badge"`
	EarnedAt time.Time        `json:"earned_at"`
	XPEarned int              `json:"xp_earned"`
	TotalXP  int              `json:"total_xp"`
}

// Claim awards a manual badge on the family's say-so. The earned set is
// re-checked at write time so a double-tap returns badge.ErrAlreadyEarned
// rather than a duplicate award.
func (s *Service) Claim(ctx context.Context, familyID, badgeID string) (ClaimResult, error) {
	earnedList, err := s.repo.ListEarnedBadges(ctx, familyID)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("listing earned badges: %w", err)
	}

	def, err := s.catalog.Claim(badgeID, earnedSet(earnedList))
	if err != nil {
		return ClaimResult{}, err
	}

	now := s.clock.Now()
	already, err := s.repo.RecordBadge(ctx, familyID, EarnedBadge{
		BadgeID:  def.ID,
		Name:     def.Name,
		Icon:     def.Icon,
		Category: def.Category,
		Manual:   true,
		EarnedAt: now,
	})
	if err != nil {
		return ClaimResult{}, fmt.Errorf("recording badge %s: %w", def.ID, err)
	}
	if already {
		return ClaimResult{}, fmt.Errorf("%w: %s", badge.ErrAlreadyEarned, badgeID)
	}

	result := ClaimResult{Badge: def, EarnedAt: now}
	if s.awardBadgeXP {
		result.XPEarned = badge.XPPerBadge
		total, err := s.repo.AddXP(ctx, familyID, badge.XPPerBadge)
		if err != nil {
			return ClaimResult{}, fmt.Errorf("adding xp: %w", err)
		}
		result.TotalXP = total
	} else {
		prog, err := s.repo.GetProgress(ctx, familyID)
		if err != nil {
			return ClaimResult{}, err
		}
		result.TotalXP = prog.TotalXP
	}
	return result, nil
}

// BadgeStatus is a catalog entry annotated with the family's earned state.
type BadgeStatus struct {
	badge.Definition
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

// Overview is the full badge board plus the XP ladder position.
type Overview struct {
	Badges        []BadgeStatus `json:"badges"`
	EarnedCount   int           `json:"earned_count"`
	TotalCount    int           `json:"total_count"`
	TotalXP       int           `json:"total_xp"`
	Level         badge.Level   `json:"level"`
	XPToNextLevel int           `json:"xp_to_next_level"`
	AtMaxLevel    bool          `json:"at_max_level"`
}

// GetOverview fetches earned badges and the XP total in parallel and merges
// them with the catalog in catalog order.
func (s *Service) GetOverview(ctx context.Context, familyID string) (Overview, error) {
	var (
		earnedList []EarnedBadge
		prog       FamilyProgress
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		earnedList, err = s.repo.ListEarnedBadges(ctx, familyID)
		return err
	})
	g.Go(func() error {
		var err error
		prog, err = s.repo.GetProgress(ctx, familyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	earnedAt := make(map[string]time.Time, len(earnedList))
	for _, e := range earnedList {
		earnedAt[e.BadgeID] = e.EarnedAt
	}

	all := s.catalog.All()
	statuses := make([]BadgeStatus, 0, len(all))
	earnedCount := 0
	for _, def := range all {
		status := BadgeStatus{Definition: def}
		if at, ok := earnedAt[def.ID]; ok {
			status.Earned = true
			at := at
			status.EarnedAt = &at
			earnedCount++
		}
		statuses = append(statuses, status)
	}

	toNext, hasNext := badge.XPToNextLevel(prog.TotalXP)
	return Overview{
		Badges:        statuses,
		EarnedCount:   earnedCount,
		TotalCount:    len(all),
		TotalXP:       prog.TotalXP,
		Level:         badge.LevelFor(prog.TotalXP),
		XPToNextLevel: toNext,
		AtMaxLevel:    !hasNext,
	}, nil
}

func earnedSet(list []EarnedBadge) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, e := range list {
		set[e.BadgeID] = true
	}
	return set
}
