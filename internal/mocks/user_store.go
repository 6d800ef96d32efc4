package mocks

import (
	"context"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, email string, update domain.ProfileUpdate) (*domain.User, error)

	// Data for default implementation
	Users           map[string]*domain.User
	CreateError     error
	GetByEmailError error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// WithUser seeds the store with a user and returns the store for chaining.
func (m *MockUserStore) WithUser(user *domain.User) *MockUserStore {
	m.Users[user.Email] = user
	return m
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// UpdateProfile implements the UserStore interface
func (m *MockUserStore) UpdateProfile(
	ctx context.Context,
	email string,
	update domain.ProfileUpdate,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, email, update)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	firstName := update.FirstName
	lastName := update.LastName
	dob := update.DateOfBirth
	address := update.Address
	user.FirstName = &firstName
	user.LastName = &lastName
	user.DateOfBirth = &dob
	user.Address = &address

	return user, nil
}
