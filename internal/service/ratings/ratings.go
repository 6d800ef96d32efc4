// Package ratings implements rating aggregation and review submission for
// volcanoes.
package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/store"
)

// Validation errors surfaced by ParseRating. The HTTP layer maps each to a
// 400 response with the matching client message.
var (
	// ErrRatingRequired indicates the submission carries no rating at all.
	ErrRatingRequired = errors.New("rating is required")

	// ErrRatingInvalid indicates the rating is not an integer in [0,5].
	ErrRatingInvalid = errors.New("rating must be a number between 0 and 5")
)

// reviewDateLayout is the calendar-date format stamped on new reviews.
const reviewDateLayout = "2006-01-02"

// Summary is the aggregate view of a volcano's reviews. Both fields are
// null when the volcano has no reviews yet.
type Summary struct {
	AverageRating *float64        `json:"averageRating"`
	Reviews       []domain.Review `json:"reviews"`
}

// Summarize computes the average rating over a review collection.
//
// The denominator is the count of reviews, not the count of reviews that
// carry a rating: a review with no rating still dilutes the average. This
// matches the dataset's established aggregation semantics.
func Summarize(reviews []domain.Review) Summary {
	if len(reviews) == 0 {
		return Summary{}
	}

	sum := 0
	for _, review := range reviews {
		if review.Rating != nil {
			sum += *review.Rating
		}
	}
	avg := float64(sum) / float64(len(reviews))

	return Summary{AverageRating: &avg, Reviews: reviews}
}

// ParseRating validates a submitted rating value. A nil raw value means no
// rating was supplied. Accepts only integers in [0,5].
func ParseRating(raw *json.Number) (int, error) {
	if raw == nil {
		return 0, ErrRatingRequired
	}
	n, err := strconv.Atoi(raw.String())
	if err != nil {
		return 0, ErrRatingInvalid
	}
	if n < 0 || n > 5 {
		return 0, ErrRatingInvalid
	}
	return n, nil
}

// Service exposes the read and write paths over a volcano's reviews.
type Service struct {
	volcanoes store.VolcanoStore
	timeFunc  func() time.Time // Injectable for testing
}

// NewService constructs a ratings Service backed by the given store.
func NewService(volcanoes store.VolcanoStore) *Service {
	return &Service{
		volcanoes: volcanoes,
		timeFunc:  time.Now,
	}
}

// Summary returns the aggregate rating view for the volcano with the given
// ID. Returns store.ErrVolcanoNotFound if the volcano does not exist.
func (s *Service) Summary(ctx context.Context, id int) (Summary, error) {
	reviews, err := s.volcanoes.GetRatings(ctx, id)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load ratings for volcano %d: %w", id, err)
	}
	return Summarize(reviews), nil
}

// Add appends a review authored by the given identity to the volcano's
// collection and returns the updated collection. The review is stamped with
// the current calendar date. Returns store.ErrVolcanoNotFound if the
// volcano does not exist.
func (s *Service) Add(
	ctx context.Context,
	id int,
	author string,
	rating int,
	comment *string,
) ([]domain.Review, error) {
	review := domain.Review{
		Date:    s.timeFunc().Format(reviewDateLayout),
		Email:   author,
		Rating:  &rating,
		Comment: comment,
	}

	updated, err := s.volcanoes.AppendRating(ctx, id, review)
	if err != nil {
		return nil, fmt.Errorf("failed to append rating to volcano %d: %w", id, err)
	}
	return updated, nil
}
