package mocks

import (
	"context"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/store"
)

// MockVolcanoStore implements store.VolcanoStore for testing
type MockVolcanoStore struct {
	// Function fields for customizable behavior
	ListCountriesFn func(ctx context.Context) ([]string, error)
	ListFn          func(ctx context.Context, country, populatedWithin string) ([]domain.Volcano, error)
	GetByIDFn       func(ctx context.Context, id int) (*domain.Volcano, error)
	GetRatingsFn    func(ctx context.Context, id int) ([]domain.Review, error)
	AppendRatingFn  func(ctx context.Context, id int, review domain.Review) ([]domain.Review, error)

	// Data for default implementation
	Volcanoes map[int]*domain.Volcano
	Countries []string
	Err       error
}

var _ store.VolcanoStore = (*MockVolcanoStore)(nil)

// NewMockVolcanoStore creates a new mock store with initialized defaults
func NewMockVolcanoStore() *MockVolcanoStore {
	return &MockVolcanoStore{
		Volcanoes: make(map[int]*domain.Volcano),
	}
}

// WithVolcano seeds the store with a volcano and returns the store for
// chaining.
func (m *MockVolcanoStore) WithVolcano(v *domain.Volcano) *MockVolcanoStore {
	m.Volcanoes[v.ID] = v
	return m
}

// ListCountries implements the VolcanoStore interface
func (m *MockVolcanoStore) ListCountries(ctx context.Context) ([]string, error) {
	if m.ListCountriesFn != nil {
		return m.ListCountriesFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Countries, nil
}

// List implements the VolcanoStore interface
func (m *MockVolcanoStore) List(
	ctx context.Context,
	country, populatedWithin string,
) ([]domain.Volcano, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, country, populatedWithin)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var out []domain.Volcano
	for _, v := range m.Volcanoes {
		if v.Country == country {
			out = append(out, *v)
		}
	}
	return out, nil
}

// GetByID implements the VolcanoStore interface
func (m *MockVolcanoStore) GetByID(ctx context.Context, id int) (*domain.Volcano, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	v, exists := m.Volcanoes[id]
	if !exists {
		return nil, store.ErrVolcanoNotFound
	}
	return v, nil
}

// GetRatings implements the VolcanoStore interface
func (m *MockVolcanoStore) GetRatings(ctx context.Context, id int) ([]domain.Review, error) {
	if m.GetRatingsFn != nil {
		return m.GetRatingsFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	v, exists := m.Volcanoes[id]
	if !exists {
		return nil, store.ErrVolcanoNotFound
	}
	return v.Ratings, nil
}

// AppendRating implements the VolcanoStore interface
func (m *MockVolcanoStore) AppendRating(
	ctx context.Context,
	id int,
	review domain.Review,
) ([]domain.Review, error) {
	if m.AppendRatingFn != nil {
		return m.AppendRatingFn(ctx, id, review)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	v, exists := m.Volcanoes[id]
	if !exists {
		return nil, store.ErrVolcanoNotFound
	}
	v.Ratings = append(v.Ratings, review)
	return v.Ratings, nil
}
