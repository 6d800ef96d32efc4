package domain

// Volcano is a record from the volcano dataset. All columns are read-only
// except Ratings, which the API appends to.
type Volcano struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	Region          string   `json:"region"`
	Subregion       string   `json:"subregion"`
	LastEruption    string   `json:"last_eruption"`
	Summit          int      `json:"summit"`
	Elevation       int      `json:"elevation"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Population5km   int      `json:"population_5km"`
	Population10km  int      `json:"population_10km"`
	Population30km  int      `json:"population_30km"`
	Population100km int      `json:"population_100km"`
	Ratings         []Review `json:"ratings,omitempty"`
}

// Review is a single user-submitted rating of a volcano. Reviews are
// immutable once appended; there is no edit or delete path.
type Review struct {
	Date    string  `json:"date"`  // Calendar date, no time-of-day
	Email   string  `json:"email"` // Author identity
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// PopulationBands enumerates the radius bands a caller may filter the
// volcano list by. Each maps to one of the population_* counts.
var PopulationBands = []string{"5km", "10km", "30km", "100km"}

// ValidPopulationBand reports whether band names one of the supported
// population-within radii.
func ValidPopulationBand(band string) bool {
	for _, b := range PopulationBands {
		if b == band {
			return true
		}
	}
	return false
}
