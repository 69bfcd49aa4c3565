package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

func newTestUser() (*domain.User, *domain.Team) {
	user := &domain.User{
		ID:           "user-1",
		FirstName:    "Ana",
		LastName:     "Souza",
		Email:        "ana@inpulse.io",
		PasswordHash: "hash",
		Role:         domain.RoleOwner,
		Status:       domain.UserStatusVerified,
	}
	team := &domain.Team{ID: "team-1", Name: "Ana's Workspace"}
	return user, team
}

func TestUserRepository_CreateUserWithTeam(t *testing.T) {
	t.Run("cria time, usuário e vínculo na mesma transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO teams").
			WithArgs("team-1", "Ana's Workspace").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec("INSERT INTO team_members").
			WithArgs("team-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		user, team := newTestUser()
		created, err := NewUserRepository(&postgres.Connection{DB: db}).CreateUserWithTeam(context.Background(), user, team)

		require.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email duplicado desfaz a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO teams").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: uniqueViolation})
		mock.ExpectRollback()

		user, team := newTestUser()
		_, err = NewUserRepository(&postgres.Connection{DB: db}).CreateUserWithTeam(context.Background(), user, team)

		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	columns := []string{"id", "first_name", "last_name", "email", "password_hash", "role", "status", "avatar", "created_at", "updated_at"}

	t.Run("usuário inexistente", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
			WithArgs("nobody@inpulse.io").
			WillReturnRows(sqlmock.NewRows(columns))

		user, err := NewUserRepository(&postgres.Connection{DB: db}).GetUserByEmail(context.Background(), "nobody@inpulse.io")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("usuário encontrado", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
			WithArgs("ana@inpulse.io").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("user-1", "Ana", "Souza", "ana@inpulse.io", "hash", "Owner", "VERIFIED", nil, now, now))

		user, err := NewUserRepository(&postgres.Connection{DB: db}).GetUserByEmail(context.Background(), "ana@inpulse.io")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, domain.RoleOwner, user.Role)
		assert.Nil(t, user.Avatar)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	t.Run("atualiza nome e devolve o usuário", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(`UPDATE users SET first_name = \$1, last_name = \$2, updated_at = NOW\(\) WHERE id = \$3 RETURNING id, first_name`).
			WithArgs("Ana Clara", "Lima", "user-1").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow("user-1", "Ana Clara", "Lima", "ana@inpulse.io", "hash", "Owner", "VERIFIED", nil, now, now))

		user, err := NewUserRepository(&postgres.Connection{DB: db}).UpdateProfile(context.Background(), "user-1", "Ana Clara", "Lima")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Ana Clara", user.FirstName)
		assert.Equal(t, "Lima", user.LastName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("UPDATE users SET").WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := NewUserRepository(&postgres.Connection{DB: db}).UpdateProfile(context.Background(), "missing", "A", "B")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET password_hash = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("novo-hash", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := NewUserRepository(&postgres.Connection{DB: db}).UpdatePassword(context.Background(), "user-1", "novo-hash")

	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
