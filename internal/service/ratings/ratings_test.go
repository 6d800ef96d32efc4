package ratings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/mocks"
	"github.com/rfenton/volcano-api/internal/store"
)

func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func numPtr(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reviews []domain.Review
		wantAvg *float64
	}{
		{
			name:    "no reviews yields null average",
			reviews: nil,
			wantAvg: nil,
		},
		{
			name: "single rated review",
			reviews: []domain.Review{
				{Date: "2025-01-01", Email: "a@example.com", Rating: intPtr(4)},
			},
			wantAvg: floatPtr(4),
		},
		{
			name: "unrated review dilutes the average",
			reviews: []domain.Review{
				{Date: "2025-01-01", Email: "a@example.com", Rating: intPtr(3)},
				{Date: "2025-01-02", Email: "b@example.com", Rating: intPtr(5)},
				{Date: "2025-01-03", Email: "c@example.com", Comment: strPtr("no rating")},
			},
			wantAvg: floatPtr(8.0 / 3.0),
		},
		{
			name: "all zero ratings",
			reviews: []domain.Review{
				{Date: "2025-01-01", Email: "a@example.com", Rating: intPtr(0)},
				{Date: "2025-01-02", Email: "b@example.com", Rating: intPtr(0)},
			},
			wantAvg: floatPtr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Summarize(tt.reviews)
			if tt.wantAvg == nil {
				assert.Nil(t, got.AverageRating)
				assert.Nil(t, got.Reviews)
				return
			}
			require.NotNil(t, got.AverageRating)
			assert.InDelta(t, *tt.wantAvg, *got.AverageRating, 1e-9)
			assert.Equal(t, tt.reviews, got.Reviews)
		})
	}
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     *json.Number
		want    int
		wantErr error
	}{
		{name: "nil means absent", raw: nil, wantErr: ErrRatingRequired},
		{name: "zero is allowed", raw: numPtr("0"), want: 0},
		{name: "five is allowed", raw: numPtr("5"), want: 5},
		{name: "mid range", raw: numPtr("3"), want: 3},
		{name: "above range", raw: numPtr("6"), wantErr: ErrRatingInvalid},
		{name: "negative", raw: numPtr("-1"), wantErr: ErrRatingInvalid},
		{name: "fractional", raw: numPtr("3.5"), wantErr: ErrRatingInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRating(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceSummary(t *testing.T) {
	t.Parallel()

	volcanoStore := mocks.NewMockVolcanoStore().
		WithVolcano(&domain.Volcano{ID: 1, Ratings: []domain.Review{
			{Date: "2025-01-01", Email: "a@example.com", Rating: intPtr(2)},
			{Date: "2025-01-02", Email: "b@example.com", Rating: intPtr(4)},
		}}).
		WithVolcano(&domain.Volcano{ID: 2})
	svc := NewService(volcanoStore)

	t.Run("existing volcano with reviews", func(t *testing.T) {
		t.Parallel()
		summary, err := svc.Summary(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, summary.AverageRating)
		assert.InDelta(t, 3.0, *summary.AverageRating, 1e-9)
		assert.Len(t, summary.Reviews, 2)
	})

	t.Run("existing volcano without reviews", func(t *testing.T) {
		t.Parallel()
		summary, err := svc.Summary(context.Background(), 2)
		require.NoError(t, err)
		assert.Nil(t, summary.AverageRating)
		assert.Nil(t, summary.Reviews)
	})

	t.Run("unknown volcano", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Summary(context.Background(), 99)
		assert.ErrorIs(t, err, store.ErrVolcanoNotFound)
	})
}

func TestServiceAdd(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	volcanoStore := mocks.NewMockVolcanoStore().WithVolcano(&domain.Volcano{ID: 1})
	svc := NewService(volcanoStore)
	svc.timeFunc = func() time.Time { return fixedTime }

	updated, err := svc.Add(context.Background(), 1, "a@example.com", 4, strPtr("great views"))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "2025-06-15", updated[0].Date)
	assert.Equal(t, "a@example.com", updated[0].Email)
	assert.Equal(t, 4, *updated[0].Rating)
	assert.Equal(t, "great views", *updated[0].Comment)

	_, err = svc.Add(context.Background(), 99, "a@example.com", 4, nil)
	assert.ErrorIs(t, err, store.ErrVolcanoNotFound)
}
