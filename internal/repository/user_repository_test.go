package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/docusmart/docusmart-server/internal/utils"
)

const userCols = "id,name,email,password_hash,role,is_active,created_at,updated_at"

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)")).
		WithArgs("Ana", "ana@x.com", sqlmock.AnyArg(), "standard").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), "Ana", "  Ana@X.com ", "pw123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ana@x.com' for key 'users.email'"))

	_, err = repo.Create(context.Background(), "Ana", "ana@x.com", "pw123", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetActiveByEmail(t *testing.T) {
	now := time.Now().UTC()
	hash, err := utils.HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("active user found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userCols+" FROM users WHERE email=? AND is_active=1 LIMIT 1")).
			WithArgs("ana@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(7, "Ana", "ana@x.com", hash, "standard", true, now, now))

		u, err := repo.GetActiveByEmail(context.Background(), "Ana@X.com")
		require.NoError(t, err)
		assert.Equal(t, uint64(7), u.ID)
		assert.Equal(t, "standard", u.Role)
		assert.True(t, u.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inactive user looks absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewUserRepo(db)

		mock.ExpectQuery("is_active=1").
			WithArgs("ana@x.com").
			WillReturnError(sql.ErrNoRows)

		_, err = repo.GetActiveByEmail(context.Background(), "ana@x.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserRepo_SetActive(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewUserRepo(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active=? WHERE id=?")).
			WithArgs(false, uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetActive(context.Background(), 7, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewUserRepo(db)

		mock.ExpectExec("UPDATE users SET is_active").
			WithArgs(false, uint64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT 1 FROM users").
			WithArgs(uint64(999)).
			WillReturnError(sql.ErrNoRows)

		err = repo.SetActive(context.Background(), 999, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no-op change on existing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewUserRepo(db)

		mock.ExpectExec("UPDATE users SET is_active").
			WithArgs(true, uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT 1 FROM users").
			WithArgs(uint64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

		assert.NoError(t, repo.SetActive(context.Background(), 7, true))
	})
}

func TestUserRepo_ListAll_Pagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM users ORDER BY id DESC LIMIT .+ OFFSET").
		WithArgs(defaultPageSize, 100).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(2, "Bea", "bea@x.com", "h", "admin", true, now, now).
			AddRow(1, "Ana", "ana@x.com", "h", "standard", false, now, now))

	users, err := repo.ListAll(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bea", users[0].Name)
	assert.False(t, users[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
