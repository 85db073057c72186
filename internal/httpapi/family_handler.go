package httpapi

import (
	"errors"
	"net/http"

	"github.com/evannickel/hike-together/internal/family"
	"github.com/evannickel/hike-together/internal/platform/auth"
)

type createFamilyRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *handler) createFamily(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body createFamilyRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fam, err := h.deps.Families.Create(r.Context(), user.UserID, body.Name)
	if err != nil {
		h.respondFamilyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapFamily(fam))
}

type joinFamilyRequest struct {
	InviteCode string `json:"inviteCode" validate:"required"`
}

func (h *handler) joinFamily(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body joinFamilyRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fam, err := h.deps.Families.Join(r.Context(), user.UserID, body.InviteCode)
	if err != nil {
		h.respondFamilyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapFamily(fam))
}

func (h *handler) getMyFamily(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mapFamily(fam))
}

type updatePreferencesRequest struct {
	UnitSystem string `json:"unitSystem" validate:"required,oneof=imperial metric"`
}

func (h *handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	var body updatePreferencesRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.deps.Families.UpdatePreferences(r.Context(), fam.ID, body.UnitSystem)
	if err != nil {
		h.respondFamilyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapFamily(updated))
}

func (h *handler) ensureInviteCode(w http.ResponseWriter, r *http.Request) {
	fam, _, ok := h.requireFamily(w, r)
	if !ok {
		return
	}

	updated, err := h.deps.Families.EnsureInviteCode(r.Context(), fam.ID)
	if err != nil {
		h.respondFamilyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapFamily(updated))
}

func (h *handler) respondFamilyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, family.ErrNotFound):
		writeError(w, http.StatusNotFound, "family not found")
	case errors.Is(err, family.ErrNoFamily):
		writeError(w, http.StatusNotFound, "create or join a family first")
	case errors.Is(err, family.ErrConflict):
		writeError(w, http.StatusConflict, "family already exists")
	case errors.Is(err, family.ErrNotOwner):
		writeError(w, http.StatusForbidden, "only the family owner can do that")
	case errors.Is(err, family.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	default:
		h.logServiceError(r, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
