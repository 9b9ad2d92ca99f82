package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"
	"time"

	"penpal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepo(sqlx.NewDb(db, "sqlmock")), mock
}

func TestUserRepo_GetUser(t *testing.T) {
	columns := []string{"user_id", "language_code", "bio", "progress", "created_at"}
	createdAt := time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "user with bio",
			userID:   123,
			mockRows: sqlmock.NewRows(columns).AddRow(123, "en", "hello", "user_profile", createdAt),
			expectedUser: &domain.User{
				ID:           123,
				LanguageCode: "en",
				Bio:          "hello",
				Progress:     domain.SceneUserProfile,
				CreatedAt:    createdAt,
			},
		},
		{
			name:     "user without bio",
			userID:   456,
			mockRows: sqlmock.NewRows(columns).AddRow(456, "ru", "", "", createdAt),
			expectedUser: &domain.User{
				ID:           456,
				LanguageCode: "ru",
				CreatedAt:    createdAt,
			},
		},
		{
			name:          "user not exists",
			userID:        789,
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			query := "SELECT user_id, language_code, COALESCE\\(bio, ''\\) AS bio, progress, created_at FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.GetUser(tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_GetUser_DatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT user_id").WithArgs(int64(123)).WillReturnError(fmt.Errorf("connection reset"))

	user, err := repo.GetUser(123)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), "en").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.EnsureUser(123, "en")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateProgress(t *testing.T) {
	tests := []struct {
		name          string
		result        driver.Result
		mockError     error
		expectedError error
		wantErr       bool
	}{
		{
			name:   "progress stored",
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:          "unknown user",
			result:        sqlmock.NewResult(0, 0),
			expectedError: domain.ErrUserNotFound,
			wantErr:       true,
		},
		{
			name:      "database error",
			mockError: fmt.Errorf("db error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			exp := mock.ExpectExec("UPDATE users SET progress").WithArgs(int64(123), "user_profile")
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdateProgress(123, domain.SceneUserProfile)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_SaveBio(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE users SET bio").
		WithArgs(int64(123), "I like letters").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveBio(123, "I like letters")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetLanguage(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedLang  string
		expectedError error
	}{
		{
			name:         "language stored",
			mockRows:     sqlmock.NewRows([]string{"language_code"}).AddRow("ru"),
			expectedLang: "ru",
		},
		{
			name:          "user not exists",
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			query := "SELECT language_code FROM users WHERE user_id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnRows(tt.mockRows)
			}

			lang, err := repo.GetLanguage(123)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLang, lang)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
