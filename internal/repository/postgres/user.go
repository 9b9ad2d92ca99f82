package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"penpal/internal/domain"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser loads the profile of a user
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	query := `
		SELECT user_id, language_code, COALESCE(bio, '') AS bio, progress, created_at
		FROM users
		WHERE user_id = $1
	`
	err := r.db.Get(&u, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	return &u, nil
}

// EnsureUser creates user if not exists and refreshes the language code otherwise
func (r *UserRepo) EnsureUser(userID int64, languageCode string) error {
	query := `
		INSERT INTO users (user_id, language_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET language_code = EXCLUDED.language_code
	`
	_, err := r.db.Exec(query, userID, languageCode)
	return err
}

// UpdateProgress stores the last scene the user reached
func (r *UserRepo) UpdateProgress(userID int64, scene domain.Scene) error {
	query := `
		UPDATE users
		SET progress = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.execOne(query, userID, string(scene))
}

// SaveBio stores the user's bio
func (r *UserRepo) SaveBio(userID int64, bio string) error {
	query := `
		UPDATE users
		SET bio = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.execOne(query, userID, bio)
}

// GetLanguage returns the stored language code of the user
func (r *UserRepo) GetLanguage(userID int64) (string, error) {
	var lang string
	query := `SELECT language_code FROM users WHERE user_id = $1`
	err := r.db.Get(&lang, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get language of user %d: %w", userID, err)
	}

	return lang, nil
}

// execOne runs an update that must touch exactly the row of userID
func (r *UserRepo) execOne(query string, userID int64, arg interface{}) error {
	res, err := r.db.Exec(query, userID, arg)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
