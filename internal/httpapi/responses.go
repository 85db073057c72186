package httpapi

import (
	"time"

	"github.com/evannickel/hike-together/internal/badge"
	"github.com/evannickel/hike-together/internal/family"
	"github.com/evannickel/hike-together/internal/hike"
	"github.com/evannickel/hike-together/internal/progress"
)

type hikeResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Distance       float64   `json:"distance"`
	ElevationGain  float64   `json:"elevationGain"`
	Location       string    `json:"location,omitempty"`
	Difficulty     string    `json:"difficulty,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	LoggedByUserID string    `json:"loggedByUserId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func mapHike(record hike.Record) hikeResponse {
	return hikeResponse{
		ID:             record.ID,
		Date:           record.Date,
		Distance:       record.Distance,
		ElevationGain:  record.ElevationGain,
		Location:       record.Location,
		Difficulty:     record.Difficulty,
		Notes:          record.Notes,
		LoggedByUserID: record.LoggedByUserID,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

type badgeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Category    string  `json:"category"`
	Manual      bool    `json:"manual"`
	Requirement float64 `json:"requirement,omitempty"`
	Description string  `json:"description,omitempty"`
}

func mapBadge(def badge.Definition) badgeResponse {
	return badgeResponse{
		ID:          def.ID,
		Name:        def.Name,
		Icon:        def.Icon,
		Category:    string(def.Category),
		Manual:      def.Category.Manual(),
		Requirement: def.Requirement,
		Description: def.Description,
	}
}

func mapBadges(defs []badge.Definition) []badgeResponse {
	out := make([]badgeResponse, len(defs))
	for i, def := range defs {
		out[i] = mapBadge(def)
	}
	return out
}

type levelResponse struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	MinXP int    `json:"minXp"`
}

func mapLevel(l badge.Level) levelResponse {
	return levelResponse{Level: l.Level, Name: l.Name, MinXP: l.MinXP}
}

type awardResponse struct {
	NewBadges     []badgeResponse `json:"newBadges"`
	XPEarned      int             `json:"xpEarned"`
	TotalXP       int             `json:"totalXp"`
	Level         levelResponse   `json:"level"`
	LeveledUp     bool            `json:"leveledUp"`
	XPToNextLevel int             `json:"xpToNextLevel"`
}

func mapAward(a progress.Award) awardResponse {
	return awardResponse{
		NewBadges:     mapBadges(a.NewBadges),
		XPEarned:      a.XPEarned,
		TotalXP:       a.TotalXP,
		Level:         mapLevel(a.Level),
		LeveledUp:     a.LeveledUp,
		XPToNextLevel: a.XPToNextLevel,
	}
}

type familyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	InviteCode         string    `json:"inviteCode"`
	OwnerUserID        string    `json:"ownerUserId"`
	MemberUserIDs      []string  `json:"memberUserIds"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	HikesThisMonth     int       `json:"hikesThisMonth"`
	UnitSystem         string    `json:"unitSystem"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func mapFamily(fam family.Family) familyResponse {
	return familyResponse{
		ID:                 fam.ID,
		Name:               fam.Name,
		InviteCode:         fam.InviteCode,
		OwnerUserID:        fam.OwnerUserID,
		MemberUserIDs:      fam.MemberUserIDs,
		SubscriptionStatus: string(fam.SubscriptionStatus),
		HikesThisMonth:     fam.HikesThisMonth,
		UnitSystem:         fam.UnitSystem,
		CreatedAt:          fam.CreatedAt,
		UpdatedAt:          fam.UpdatedAt,
	}
}
