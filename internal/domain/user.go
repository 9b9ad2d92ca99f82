package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrUserNotFound is returned when no profile exists for a Telegram user
var ErrUserNotFound = errors.New("user not found")

// User represents a registered bot user
type User struct {
	ID           int64     `db:"user_id"`
	LanguageCode string    `db:"language_code"`
	Bio          string    `db:"bio"`
	Progress     Scene     `db:"progress"`
	CreatedAt    time.Time `db:"created_at"`
}

// HasBio reports whether the user already told about themselves.
// A whitespace-only bio counts as missing.
func (u *User) HasBio() bool {
	return u != nil && strings.TrimSpace(u.Bio) != ""
}
