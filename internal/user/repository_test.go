package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"pcstore-be/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(id, name, email, password, role\) VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
			WithArgs(sqlmock.AnyArg(), "John", "john@example.com", "hashed", "USER").
			WillReturnRows(sqlmock.NewRows([]string{"name", "email", "password", "role", "created_at"}).
				AddRow("John", "john@example.com", "hashed", "USER", time.Now()))

		u, err := repo.Create(ctx, "John", "john@example.com", "hashed", "USER")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "john@example.com", u.Email)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, "John", "john@example.com", "hashed", "USER")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, "John", "john@example.com", "hashed", "USER")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	email := "john@example.com"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, password, role, created_at FROM users WHERE email = \$1`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}).
				AddRow("u1", "John", email, "hashed", "USER", time.Now()))

		u, err := repo.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		u, err := repo.FindByEmail(ctx, email)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, u)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	_, err = NewRepository(db).FindByID(context.Background(), "u1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_Profile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("GetProfile", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM profiles p\s+INNER JOIN users u ON p.user_id = u.id\s+WHERE p.user_id = \$1`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "phone", "address", "avatar_url", "updated_at", "email"}).
				AddRow("u1", "John", nil, "Colombo", nil, now, "john@example.com"))

		p, err := repo.GetProfile(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "John", *p.FullName)
		assert.Nil(t, p.Phone)
		assert.Equal(t, "john@example.com", p.Email)
	})

	t.Run("GetProfile NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM profiles`).
			WithArgs("u2").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.GetProfile(ctx, "u2")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("CreateProfile", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO profiles \(user_id, full_name, phone, address, avatar_url\)`).
			WithArgs("u1", "John", nil, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		p, err := repo.CreateProfile(ctx, &Profile{UserID: "u1", FullName: utils.StrPtr("John")})
		require.NoError(t, err)
		assert.Equal(t, now, p.UpdatedAt)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		phone := "0771234567"
		mock.ExpectQuery(`UPDATE profiles\s+SET full_name = COALESCE\(\$2, full_name\)`).
			WithArgs("u1", nil, phone, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "phone", "address", "avatar_url", "updated_at"}).
				AddRow("u1", "John", phone, nil, nil, now))

		p, err := repo.UpdateProfile(ctx, "u1", UpdateProfileParams{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, phone, *p.Phone)
	})

	t.Run("UpdateProfile NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE profiles`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.UpdateProfile(ctx, "u3", UpdateProfileParams{})
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
