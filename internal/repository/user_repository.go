package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/docusmart/docusmart-server/internal/model"
	"github.com/docusmart/docusmart-server/internal/utils"
)

// UserRepo issues parameterized queries against the users table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create hashes the password and inserts the user in a single atomic
// statement.  The unique index on email closes the race between two
// concurrent registrations: the loser gets MySQL error 1062, surfaced as
// ErrEmailExists.  New users always start with the standard role.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)",
		name, email, hash, model.RoleStandard)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email regardless of active flag.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetActiveByEmail is the login lookup: it additionally filters the active
// flag, so a deactivated account is indistinguishable from an unknown email.
func (r *UserRepo) GetActiveByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE email=? AND is_active=1 LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// ListAll returns every user, active or not, for the admin surface.
// Results are paginated newest first.
func (r *UserRepo) ListAll(ctx context.Context, page int) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM users ORDER BY id DESC LIMIT ? OFFSET ?",
		defaultPageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateProfile sets a user's display name and role (admin operation).
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, name, role string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=?, role=? WHERE id=?", name, role, id)
	if err != nil {
		return err
	}
	return mustExist(ctx, r.DB, res, "users", id)
}

// SetActive toggles the soft-deactivation flag.  Rows are never deleted.
func (r *UserRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_active=? WHERE id=?", active, id)
	if err != nil {
		return err
	}
	return mustExist(ctx, r.DB, res, "users", id)
}

// mustExist disambiguates "no rows changed" after an UPDATE: MySQL reports
// zero affected rows both for a missing id and for a no-op change, so a
// follow-up existence probe decides between ErrNotFound and success.
func mustExist(ctx context.Context, db *sql.DB, res sql.Result, table string, id uint64) error {
	n, err := res.RowsAffected()
	if err != nil || n > 0 {
		return err
	}
	var one int
	err = db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id=? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}
