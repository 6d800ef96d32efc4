package store

import (
	"context"

	"github.com/rfenton/volcano-api/internal/domain"
)

// VolcanoStore defines the interface for volcano data persistence.
// Volcano rows are read-only except for the ratings collection.
type VolcanoStore interface {
	// ListCountries returns the sorted distinct country names present in
	// the dataset.
	ListCountries(ctx context.Context) ([]string, error)

	// List returns the volcanoes in the given country with only the summary
	// fields (id, name, country, region, subregion) populated. When
	// populatedWithin names a radius band, only volcanoes with a non-zero
	// population count for that band are returned. populatedWithin must be
	// empty or one of domain.PopulationBands.
	List(ctx context.Context, country, populatedWithin string) ([]domain.Volcano, error)

	// GetByID retrieves a full volcano record by its numeric ID.
	// Returns ErrVolcanoNotFound if no such volcano exists.
	GetByID(ctx context.Context, id int) (*domain.Volcano, error)

	// GetRatings returns the review collection for a volcano. A volcano
	// with no reviews yields a nil slice.
	// Returns ErrVolcanoNotFound if no such volcano exists.
	GetRatings(ctx context.Context, id int) ([]domain.Review, error)

	// AppendRating atomically appends a review to the volcano's collection
	// and returns the updated collection. The append happens in a single
	// statement, so concurrent appends do not lose reviews.
	// Returns ErrVolcanoNotFound if no such volcano exists.
	AppendRating(ctx context.Context, id int, review domain.Review) ([]domain.Review, error)
}
