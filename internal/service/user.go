package service

import (
	"errors"
	"fmt"
	"strings"

	"penpal/internal/domain"
	"penpal/internal/repository"
)

// ErrEmptyBio is returned when a user sends a blank bio
var ErrEmptyBio = errors.New("bio cannot be empty")

// UserService handles user profile logic
type UserService struct {
	userRepo        repository.UserRepository
	defaultLanguage string
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, defaultLanguage string) *UserService {
	return &UserService{
		userRepo:        userRepo,
		defaultLanguage: defaultLanguage,
	}
}

// GetProfile returns the stored profile of a user
func (s *UserService) GetProfile(userID int64) (*domain.User, error) {
	return s.userRepo.GetUser(userID)
}

// RecordProgress stores the scene the user entered
func (s *UserService) RecordProgress(userID int64, scene domain.Scene) error {
	if err := s.userRepo.UpdateProgress(userID, scene); err != nil {
		return fmt.Errorf("record progress %q: %w", scene, err)
	}
	return nil
}

// Language returns the language the user talks to the bot in
func (s *UserService) Language(userID int64) (string, error) {
	lang, err := s.userRepo.GetLanguage(userID)
	if err != nil {
		return "", err
	}
	if lang == "" {
		return s.defaultLanguage, nil
	}
	return lang, nil
}

// SaveBio validates and stores the user's bio
func (s *UserService) SaveBio(userID int64, bio string) error {
	bio = strings.TrimSpace(bio)
	if bio == "" {
		return ErrEmptyBio
	}
	return s.userRepo.SaveBio(userID, bio)
}

// Register creates the user record if it doesn't exist
func (s *UserService) Register(userID int64, languageCode string) error {
	return s.userRepo.EnsureUser(userID, languageCode)
}

// IsRegistered checks whether the user has a profile
func (s *UserService) IsRegistered(userID int64) (bool, error) {
	_, err := s.userRepo.GetUser(userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
