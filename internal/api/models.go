package api

import (
	"encoding/json"

	"github.com/rfenton/volcano-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Email format is deliberately not enforced beyond presence; the dataset
// predates any format constraint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // Seconds until expiry
}

// MessageResponse is a plain informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// RatingRequest defines the payload for the review submission endpoint.
// Rating is decoded as a raw JSON number so absence, non-numeric values and
// range violations can be told apart.
type RatingRequest struct {
	Rating  *json.Number `json:"rating"`
	Comment *string      `json:"comment"`
}

// VolcanoSummary is the row shape returned by the volcano list endpoint.
type VolcanoSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
}

// NewVolcanoSummary maps a volcano record to its list row.
func NewVolcanoSummary(v domain.Volcano) VolcanoSummary {
	return VolcanoSummary{
		ID:        v.ID,
		Name:      v.Name,
		Country:   v.Country,
		Region:    v.Region,
		Subregion: v.Subregion,
	}
}

// VolcanoView is the volcano detail field set disclosed to anonymous
// callers.
type VolcanoView struct {
	VolcanoSummary
	LastEruption string  `json:"last_eruption"`
	Summit       int     `json:"summit"`
	Elevation    int     `json:"elevation"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// VolcanoAuthView extends VolcanoView with the population counts disclosed
// to any authenticated caller. Volcano records have no owner, so there is
// no owner-restricted tier.
type VolcanoAuthView struct {
	VolcanoView
	Population5km   int `json:"population_5km"`
	Population10km  int `json:"population_10km"`
	Population30km  int `json:"population_30km"`
	Population100km int `json:"population_100km"`
}

// NewVolcanoView resolves which volcano detail fields the caller may see:
// the population_* fields are included iff the request is authenticated.
func NewVolcanoView(v *domain.Volcano, authenticated bool) any {
	base := VolcanoView{
		VolcanoSummary: NewVolcanoSummary(*v),
		LastEruption:   v.LastEruption,
		Summit:         v.Summit,
		Elevation:      v.Elevation,
		Latitude:       v.Latitude,
		Longitude:      v.Longitude,
	}
	if !authenticated {
		return base
	}
	return VolcanoAuthView{
		VolcanoView:     base,
		Population5km:   v.Population5km,
		Population10km:  v.Population10km,
		Population30km:  v.Population30km,
		Population100km: v.Population100km,
	}
}
