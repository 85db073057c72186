package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evannickel/hike-together/internal/billing"
	"github.com/evannickel/hike-together/internal/hike"
	"github.com/evannickel/hike-together/internal/units"
)

type logHikeRequest struct {
	Date          string  `json:"date" validate:"required"`
	Distance      float64 `json:"distance" validate:"gte=0"`
	ElevationGain float64 `json:"elevationGain" validate:"gte=0"`
	Location      string  `json:"location"`
	Difficulty    string  `json:"difficulty" validate:"omitempty,oneof=easy moderate hard"`
	Notes         string  `json:"notes"`
}

type logHikeResponse struct {
	Hike  hikeResponse  `json:"hike"`
	Award awardResponse `json:"award"`
}

func (h *handler) logHike(w http.ResponseWriter, r *http.Request) {
	fam, user, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	var body logHikeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
		return
	}

	result, err := h.deps.Hikes.Log(r.Context(), hike.CreateInput{
		FamilyID:      fam.ID,
		UserID:        user.UserID,
		Date:          date,
		Distance:      body.Distance,
		ElevationGain: body.ElevationGain,
		Location:      body.Location,
		Difficulty:    body.Difficulty,
		Notes:         body.Notes,
	})
	if err != nil {
		h.respondHikeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, logHikeResponse{
		Hike:  mapHike(result.Hike),
		Award: mapAward(result.Award),
	})
}

func (h *handler) listHikes(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	records, err := h.deps.Hikes.List(r.Context(), fam.ID)
	if err != nil {
		h.respondHikeError(w, r, err)
		return
	}

	data := make([]hikeResponse, len(records))
	for i, record := range records {
		data[i] = mapHike(record)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func (h *handler) getHike(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	record, err := h.deps.Hikes.Get(r.Context(), fam.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondHikeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapHike(record))
}

type updateHikeRequest struct {
	Date          *string  `json:"date"`
	Distance      *float64 `json:"distance" validate:"omitempty,gte=0"`
	ElevationGain *float64 `json:"elevationGain" validate:"omitempty,gte=0"`
	Location      *string  `json:"location"`
	Difficulty    *string  `json:"difficulty" validate:"omitempty,oneof=easy moderate hard"`
	Notes         *string  `json:"notes"`
}

func (h *handler) updateHike(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	var body updateHikeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updates := hike.UpdateInput{
		Distance:      body.Distance,
		ElevationGain: body.ElevationGain,
		Location:      body.Location,
		Difficulty:    body.Difficulty,
		Notes:         body.Notes,
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
			return
		}
		updates.Date = &date
	}

	record, err := h.deps.Hikes.Update(r.Context(), fam.ID, chi.URLParam(r, "id"), updates)
	if err != nil {
		h.respondHikeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapHike(record))
}

func (h *handler) deleteHike(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	if err := h.deps.Hikes.Delete(r.Context(), fam.ID, chi.URLParam(r, "id")); err != nil {
		h.respondHikeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statsResponse struct {
	TotalHikes       int     `json:"totalHikes"`
	TotalMiles       float64 `json:"totalMiles"`
	TotalFeet        float64 `json:"totalFeet"`
	CurrentStreak    int     `json:"currentStreak"`
	SeasonsVisited   int     `json:"seasonsVisited"`
	DistanceDisplay  string  `json:"distanceDisplay"`
	ElevationDisplay string  `json:"elevationDisplay"`
}

func (h *handler) getStats(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	stats, err := h.deps.Hikes.Stats(r.Context(), fam.ID)
	if err != nil {
		h.respondHikeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalHikes:       stats.TotalHikes,
		TotalMiles:       stats.TotalMiles,
		TotalFeet:        stats.TotalFeet,
		CurrentStreak:    stats.CurrentStreak,
		SeasonsVisited:   stats.SeasonsVisited,
		DistanceDisplay:  units.FormatDistance(stats.TotalMiles, fam.UnitSystem),
		ElevationDisplay: units.FormatElevation(stats.TotalFeet, fam.UnitSystem),
	})
}

func (h *handler) respondHikeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, hike.ErrNotFound):
		writeError(w, http.StatusNotFound, "hike not found")
	case errors.Is(err, hike.ErrConflict):
		writeError(w, http.StatusConflict, "hike already exists")
	case errors.Is(err, hike.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, billing.ErrHikeLimitReached):
		writeError(w, http.StatusPaymentRequired, "monthly hike limit reached; upgrade to premium for unlimited hikes")
	default:
		h.logServiceError(r, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseDate accepts a bare calendar date or a full timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
