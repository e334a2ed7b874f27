package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/yeswin/wingo/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByGmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		gmail     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing user",
			gmail: "player@gmail.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "gmail", "password_hash", "is_blocked"}).
					AddRow(1, "player@gmail.com", "hashed", false)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, gmail, password_hash, is_blocked FROM users WHERE gmail = $1`)).
					WithArgs("player@gmail.com").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Gmail: "player@gmail.com", PasswordHash: "hashed"},
		},
		{
			name:  "Missing user returns nil",
			gmail: "nobody@gmail.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, gmail, password_hash, is_blocked FROM users WHERE gmail = $1`)).
					WithArgs("nobody@gmail.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			gmail: "player@gmail.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, gmail, password_hash, is_blocked FROM users WHERE gmail = $1`)).
					WithArgs("player@gmail.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByGmail(context.Background(), tt.gmail)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	user := &domain.User{Gmail: "player@gmail.com", PasswordHash: "hashed"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("player@gmail.com", "hashed").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	got, err := repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("player@gmail.com", "hashed").
		WillReturnError(errors.New("database error"))

	_, err = repo.Create(context.Background(), user)
	assert.Error(t, err)
}
