// Package storage defines the persistence interfaces for the service and
// provides the in-memory implementation. The PostgreSQL implementation lives
// in the postgres subpackage.
package storage

import (
	"context"

	"crud-service/internal/domain/item"
	"crud-service/internal/domain/user"
)

// ItemStore persists item records.
type ItemStore interface {
	CreateItem(ctx context.Context, it item.Item) (item.Item, error)
	ListItems(ctx context.Context) ([]item.Item, error)
	GetItem(ctx context.Context, id string) (item.Item, error)
	UpdateItem(ctx context.Context, id, name string) (item.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// UserStore persists user records.
type UserStore interface {
	CreateUser(ctx context.Context, u user.User) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
	UpdateUser(ctx context.Context, id, email string) (user.User, error)
	DeleteUser(ctx context.Context, id string) error
}
