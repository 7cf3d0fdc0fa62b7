package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campuskit/rollcall/internal/auth/domain"
	"github.com/campuskit/rollcall/internal/auth/store"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, password_hash, role_name, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role_name) VALUES (?, ?, ?)`,
		u.Username, u.PasswordHash, u.RoleName,
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.GetUserByID(ctx, id)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleName,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, id int64, roleName string) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role_name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		roleName, id,
	)
	if err != nil {
		return domain.User{}, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if n == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetUserByID(ctx, id)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleName,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

// mapConstraint translates a SQLite unique-constraint violation into
// store.ErrAlreadyExists so callers never see driver error types.
func mapConstraint(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}
