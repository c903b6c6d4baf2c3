// Package postgres implements the storage interfaces backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"crud-service/internal/apperr"
	"crud-service/internal/domain/item"
	"crud-service/internal/domain/user"
	"crud-service/internal/storage"
)

// Store implements the storage interfaces over a database/sql handle. All
// serialization is delegated to the database; the store keeps no in-process
// mutable state.
type Store struct {
	db *sql.DB
}

var _ storage.ItemStore = (*Store)(nil)
var _ storage.UserStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ItemStore implementation ----------------------------------------------------

// CreateItem upserts on the item's natural key: inserting a name that
// already exists returns the stored row instead of creating a duplicate.
func (s *Store) CreateItem(ctx context.Context, it item.Item) (item.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO items (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`, it.ID, it.Name)

	var stored item.Item
	if err := row.Scan(&stored.ID, &stored.Name); err != nil {
		return item.Item{}, apperr.Internal("failed to upsert item", err)
	}
	return stored, nil
}

func (s *Store) ListItems(ctx context.Context) ([]item.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM items ORDER BY name ASC
	`)
	if err != nil {
		return nil, apperr.Internal("failed to fetch items", err)
	}
	defer rows.Close()

	result := make([]item.Item, 0)
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, apperr.Internal("failed to fetch items", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("failed to fetch items", err)
	}
	return result, nil
}

func (s *Store) GetItem(ctx context.Context, id string) (item.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name FROM items WHERE id = $1
	`, id)

	var it item.Item
	if err := row.Scan(&it.ID, &it.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item.Item{}, apperr.NotFoundf("item with id %s not found", id)
		}
		return item.Item{}, apperr.Internal("failed to fetch item", err)
	}
	return it, nil
}

func (s *Store) UpdateItem(ctx context.Context, id, name string) (item.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE items SET name = $2 WHERE id = $1
		RETURNING id, name
	`, id, name)

	var it item.Item
	if err := row.Scan(&it.ID, &it.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item.Item{}, apperr.NotFoundf("item with id %s not found", id)
		}
		return item.Item{}, apperr.Internal("failed to update item", err)
	}
	return it, nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM items WHERE id = $1
	`, id)
	if err != nil {
		return apperr.Internal("failed to delete item", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFoundf("item with id %s not found", id)
	}
	return nil
}

// UserStore implementation ----------------------------------------------------

// CreateUser upserts on email, the user's natural key.
func (s *Store) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email
	`, u.ID, u.Email)

	var stored user.User
	if err := row.Scan(&stored.ID, &stored.Email); err != nil {
		return user.User{}, apperr.Internal("failed to upsert user", err)
	}
	return stored, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email FROM users ORDER BY email ASC
	`)
	if err != nil {
		return nil, apperr.Internal("failed to fetch users", err)
	}
	defer rows.Close()

	result := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email); err != nil {
			return nil, apperr.Internal("failed to fetch users", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("failed to fetch users", err)
	}
	return result, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (user.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email FROM users WHERE id = $1
	`, id)

	var u user.User
	if err := row.Scan(&u.ID, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, apperr.NotFoundf("user with id %s not found", id)
		}
		return user.User{}, apperr.Internal("failed to fetch user", err)
	}
	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id, email string) (user.User, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE users SET email = $2 WHERE id = $1
		RETURNING id, email
	`, id, email)

	var u user.User
	if err := row.Scan(&u.ID, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, apperr.NotFoundf("user with id %s not found", id)
		}
		return user.User{}, apperr.Internal("failed to update user", err)
	}
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM users WHERE id = $1
	`, id)
	if err != nil {
		return apperr.Internal("failed to delete user", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFoundf("user with id %s not found", id)
	}
	return nil
}
