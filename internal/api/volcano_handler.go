package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rfenton/volcano-api/internal/api/middleware"
	"github.com/rfenton/volcano-api/internal/api/shared"
	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/service/ratings"
	"github.com/rfenton/volcano-api/internal/store"
)

// Client-facing messages for the volcano endpoints.
const (
	msgNoQueryParams      = "Invalid query parameters. Query parameters are not permitted."
	msgListQueryParams    = "Invalid query parameters. Only country and populatedWithin are permitted."
	msgCountryRequired    = "Invalid query parameters. Country is a required parameter."
	msgBadPopulatedWithin = "Invalid value for populatedWithin. Only: 5km,10km,30km,100km are permitted."
	msgRatingRequired     = "Request body incomplete: Rating is required."
	msgRatingInvalid      = "Request body invalid: Rating must be a number between 0 and 5 (inclusive)."
)

// VolcanoHandler handles the dataset read endpoints and the ratings
// endpoints.
type VolcanoHandler struct {
	volcanoStore store.VolcanoStore
	ratings      *ratings.Service
}

// NewVolcanoHandler creates a new VolcanoHandler with the given dependencies.
func NewVolcanoHandler(volcanoStore store.VolcanoStore, ratingsService *ratings.Service) *VolcanoHandler {
	return &VolcanoHandler{
		volcanoStore: volcanoStore,
		ratings:      ratingsService,
	}
}

// volcanoNotFoundMessage keys the not-found message by the identifier as
// the caller sent it.
func volcanoNotFoundMessage(rawID string) string {
	return fmt.Sprintf("Volcano with ID: %s not found.", rawID)
}

// Countries handles GET /countries.
func (h *VolcanoHandler) Countries(w http.ResponseWriter, r *http.Request) {
	if !shared.ValidateQueryParams(r.URL.Query()) {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoQueryParams)
		return
	}

	countries, err := h.volcanoStore.ListCountries(r.Context())
	if err != nil {
		slog.Error("failed to list countries", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	if countries == nil {
		countries = []string{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, countries)
}

// List handles GET /volcanoes. country is mandatory; populatedWithin is
// optional but must name a known radius band and additionally requires the
// matching population count to be non-zero.
func (h *VolcanoHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if !shared.ValidateQueryParams(query, "country", "populatedWithin") {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgListQueryParams)
		return
	}

	country := query.Get("country")
	popWithin := query.Get("populatedWithin")

	if country == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCountryRequired)
		return
	}
	if popWithin != "" && !domain.ValidPopulationBand(popWithin) {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadPopulatedWithin)
		return
	}

	volcanoes, err := h.volcanoStore.List(r.Context(), country, popWithin)
	if err != nil {
		slog.Error("failed to list volcanoes", "error", err, "country", country)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	rows := make([]VolcanoSummary, 0, len(volcanoes))
	for _, v := range volcanoes {
		rows = append(rows, NewVolcanoSummary(v))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// Detail handles GET /volcano/{id}. Population fields are included iff the
// request is authenticated.
func (h *VolcanoHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if !shared.ValidateQueryParams(r.URL.Query()) {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoQueryParams)
		return
	}

	rawID := chi.URLParam(r, "id")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, volcanoNotFoundMessage(rawID))
		return
	}

	volcano, err := h.volcanoStore.GetByID(r.Context(), id)
	if err != nil {
		if status := MapErrorToStatusCode(err); status == http.StatusNotFound {
			shared.RespondWithError(w, r, status, volcanoNotFoundMessage(rawID))
			return
		}
		slog.Error("failed to get volcano", "error", err, "volcano_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	_, authenticated := middleware.GetIdentity(r)
	shared.RespondWithJSON(w, r, http.StatusOK, NewVolcanoView(volcano, authenticated))
}

// GetRatings handles GET /volcano/{id}/ratings.
func (h *VolcanoHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	if !shared.ValidateQueryParams(r.URL.Query()) {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoQueryParams)
		return
	}

	rawID := chi.URLParam(r, "id")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, volcanoNotFoundMessage(rawID))
		return
	}

	summary, err := h.ratings.Summary(r.Context(), id)
	if err != nil {
		if status := MapErrorToStatusCode(err); status == http.StatusNotFound {
			shared.RespondWithError(w, r, status, volcanoNotFoundMessage(rawID))
			return
		}
		slog.Error("failed to summarize ratings", "error", err, "volcano_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// PostRating handles POST and PUT /volcano/{id}/ratings. Body validation
// runs before the authentication check, matching the endpoint's documented
// precedence.
func (h *VolcanoHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		// An empty or truncated body carries no rating at all, which is the
		// "required" case rather than the "invalid value" case.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgRatingRequired)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, msgRatingInvalid)
		return
	}

	rating, err := ratings.ParseRating(req.Rating)
	if err != nil {
		if errors.Is(err, ratings.ErrRatingRequired) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgRatingRequired)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, msgRatingInvalid)
		return
	}

	caller, ok := middleware.GetIdentity(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgAuthHeaderNotFound)
		return
	}

	if !shared.ValidateQueryParams(r.URL.Query()) {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoQueryParams)
		return
	}

	rawID := chi.URLParam(r, "id")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, volcanoNotFoundMessage(rawID))
		return
	}

	updated, err := h.ratings.Add(r.Context(), id, caller, rating, req.Comment)
	if err != nil {
		if status := MapErrorToStatusCode(err); status == http.StatusNotFound {
			shared.RespondWithError(w, r, status, volcanoNotFoundMessage(rawID))
			return
		}
		slog.Error("failed to append rating", "error", err, "volcano_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}
