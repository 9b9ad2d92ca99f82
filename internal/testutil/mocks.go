package testutil

import (
	"penpal/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EnsureUser(userID int64, languageCode string) error {
	args := m.Called(userID, languageCode)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProgress(userID int64, scene domain.Scene) error {
	args := m.Called(userID, scene)
	return args.Error(0)
}

func (m *MockUserRepository) SaveBio(userID int64, bio string) error {
	args := m.Called(userID, bio)
	return args.Error(0)
}

func (m *MockUserRepository) GetLanguage(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
