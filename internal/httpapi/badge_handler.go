package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evannickel/hike-together/internal/badge"
	"github.com/evannickel/hike-together/internal/progress"
)

type badgeStatusResponse struct {
	badgeResponse
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

type badgeOverviewResponse struct {
	Badges        []badgeStatusResponse `json:"badges"`
	EarnedCount   int                   `json:"earnedCount"`
	TotalCount    int                   `json:"totalCount"`
	TotalXP       int                   `json:"totalXp"`
	Level         levelResponse         `json:"level"`
	XPToNextLevel int                   `json:"xpToNextLevel"`
	AtMaxLevel    bool                  `json:"atMaxLevel"`
}

func (h *handler) getBadges(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	overview, err := h.deps.Progress.GetOverview(r.Context(), fam.ID)
	if err != nil {
		h.respondBadgeError(w, r, err)
		return
	}

	badges := make([]badgeStatusResponse, len(overview.Badges))
	for i, status := range overview.Badges {
		badges[i] = badgeStatusResponse{
			badgeResponse: mapBadge(status.Definition),
			Earned:        status.Earned,
			EarnedAt:      status.EarnedAt,
		}
	}

	writeJSON(w, http.StatusOK, badgeOverviewResponse{
		Badges:        badges,
		EarnedCount:   overview.EarnedCount,
		TotalCount:    overview.TotalCount,
		TotalXP:       overview.TotalXP,
		Level:         mapLevel(overview.Level),
		XPToNextLevel: overview.XPToNextLevel,
		AtMaxLevel:    overview.AtMaxLevel,
	})
}

type claimResponse struct {
	Badge    badgeResponse `json:"badge"`
	EarnedAt time.Time     `json:"earnedAt"`
	XPEarned int           `json:"xpEarned"`
	TotalXP  int           `json:"totalXp"`
}

func (h *handler) claimBadge(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	result, err := h.deps.Progress.Claim(r.Context(), fam.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondBadgeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, claimResponse{
		Badge:    mapBadge(result.Badge),
		EarnedAt: result.EarnedAt,
		XPEarned: result.XPEarned,
		TotalXP:  result.TotalXP,
	})
}

func (h *handler) respondBadgeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, badge.ErrBadgeNotFound):
		writeError(w, http.StatusNotFound, "badge not found")
	case errors.Is(err, badge.ErrNotClaimable):
		writeError(w, http.StatusBadRequest, "badge is earned automatically and cannot be claimed")
	case errors.Is(err, badge.ErrAlreadyEarned):
		writeError(w, http.StatusConflict, "badge already earned")
	case errors.Is(err, progress.ErrNotFound):
		writeError(w, http.StatusNotFound, "family progress not found")
	default:
		h.logServiceError(r, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
