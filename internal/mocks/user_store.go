package mocks

import (
	"context"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	UpdateNameFn     func(ctx context.Context, id int64, name string) (*domain.User, error)
	UpdatePasswordFn func(ctx context.Context, id int64, hashedPassword string) (*domain.User, error)

	// Data for default implementation, keyed by email
	Users  map[string]*domain.User
	nextID int64

	// UpdatePasswordCalls counts password writes so tests can assert the new
	// password was never persisted on a failed change.
	UpdatePasswordCalls int
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.nextID++
	user.ID = m.nextID
	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// UpdateName implements the UserStore interface
func (m *MockUserStore) UpdateName(ctx context.Context, id int64, name string) (*domain.User, error) {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, id, name)
	}

	user, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

// UpdatePassword implements the UserStore interface
func (m *MockUserStore) UpdatePassword(
	ctx context.Context,
	id int64,
	hashedPassword string,
) (*domain.User, error) {
	m.UpdatePasswordCalls++

	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, id, hashedPassword)
	}

	user, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hashedPassword
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}
