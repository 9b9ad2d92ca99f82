package repository

import (
	"penpal/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetUser(userID int64) (*domain.User, error)
	EnsureUser(userID int64, languageCode string) error
	UpdateProgress(userID int64, scene domain.Scene) error
	SaveBio(userID int64, bio string) error
	GetLanguage(userID int64) (string, error)
}
