package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rfenton/volcano-api/internal/api/middleware"
	"github.com/rfenton/volcano-api/internal/api/shared"
	"github.com/rfenton/volcano-api/internal/service/profile"
	"github.com/rfenton/volcano-api/internal/store"
)

// Client-facing messages for the profile endpoints.
const (
	msgUserNotFound      = "User not found"
	msgForbidden         = "Forbidden"
	msgProfileIncomplete = "Request body incomplete: firstName, lastName, dob and address are required."
	msgProfileNonString  = "Request body invalid: firstName, lastName and address must be strings only."
	msgDobInvalid        = "Invalid input: dob must be a real date in format YYYY-MM-DD."
	msgDobFuture         = "Invalid input: dob must be a date in the past."
)

// ProfileHandler handles profile fetch and update.
type ProfileHandler struct {
	userStore store.UserStore
	timeFunc  func() time.Time // Injectable for testing
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(userStore store.UserStore) *ProfileHandler {
	return &ProfileHandler{
		userStore: userStore,
		timeFunc:  time.Now,
	}
}

// Get handles GET /{email}/profile. Both anonymous and authenticated
// callers are served; the disclosed field set depends on whether the caller
// identity matches the profile owner.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if status := MapErrorToStatusCode(err); status == http.StatusNotFound {
			shared.RespondWithError(w, r, status, msgUserNotFound)
			return
		}
		slog.Error("failed to get profile", "error", err, "email", email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	caller, _ := middleware.GetIdentity(r)
	shared.RespondWithJSON(w, r, http.StatusOK, profile.Resolve(user, caller))
}

// Update handles PUT /{email}/profile. Body validation runs before the
// authentication checks, so a malformed body yields 400 even without a
// credential.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var body map[string]any
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgProfileIncomplete)
		return
	}

	update, err := profile.ParseUpdate(body, h.timeFunc())
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrIncomplete):
			shared.RespondWithError(w, r, http.StatusBadRequest, msgProfileIncomplete)
		case errors.Is(err, profile.ErrNonString):
			shared.RespondWithError(w, r, http.StatusBadRequest, msgProfileNonString)
		case errors.Is(err, profile.ErrFutureDate):
			shared.RespondWithError(w, r, http.StatusBadRequest, msgDobFuture)
		default:
			shared.RespondWithError(w, r, http.StatusBadRequest, msgDobInvalid)
		}
		return
	}

	caller, ok := middleware.GetIdentity(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgAuthHeaderNotFound)
		return
	}
	if caller != email {
		shared.RespondWithError(w, r, http.StatusForbidden, msgForbidden)
		return
	}

	user, err := h.userStore.UpdateProfile(r.Context(), email, update)
	if err != nil {
		if status := MapErrorToStatusCode(err); status == http.StatusNotFound {
			shared.RespondWithError(w, r, status, msgUserNotFound)
			return
		}
		slog.Error("failed to update profile", "error", err, "email", email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	// The caller is the owner here, so the full field set comes back.
	shared.RespondWithJSON(w, r, http.StatusOK, profile.Resolve(user, caller))
}
