package testutil

import (
	"time"

	"penpal/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, bio string) *domain.User {
	return &domain.User{
		ID:           userID,
		LanguageCode: "en",
		Bio:          bio,
		CreatedAt:    time.Now(),
	}
}
