package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow("u-1", "manager", "hash", "admin", time.Now())

		mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at FROM users WHERE username = \$1`).
			WithArgs("manager").
			WillReturnRows(rows)

		u, err := repo.GetByUsername(ctx, "manager")
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, "admin", u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at FROM users`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}))

		_, err := repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at FROM users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetByUsername(ctx, "manager")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow("u-1", "manager", "hash", "admin", time.Now())

		mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at FROM users WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(rows)

		u, err := repo.GetByID(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.Equal(t, "manager", u.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at FROM users`).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}))

		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
		AddRow("u-2", "barista", "hash", "admin", time.Now())

	mock.ExpectQuery(`INSERT INTO users \(id, username, password_hash, role\)`).
		WithArgs(sqlmock.AnyArg(), "barista", "hash", "admin").
		WillReturnRows(rows)

	u, err := repo.Create(context.Background(), "barista", "hash", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "u-2", u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
