package storage

import (
	"context"
	"sync"

	"crud-service/internal/apperr"
	"crud-service/internal/domain/item"
	"crud-service/internal/domain/user"
)

// Memory is an in-memory persistence layer implementing the storage
// interfaces in this package. Each entity keeps an ordered slice guarded by
// its own mutex; every read and write holds the lock only for the duration
// of the scan or mutation. Intended for tests and for running without a
// database.
type Memory struct {
	itemsMu sync.Mutex
	items   []item.Item

	usersMu sync.Mutex
	users   []user.User
}

var _ ItemStore = (*Memory)(nil)
var _ UserStore = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// ItemStore implementation ----------------------------------------------------

// CreateItem is an upsert by name: when an item with the same name already
// exists the stored record is returned unchanged and no duplicate is added.
func (m *Memory) CreateItem(_ context.Context, it item.Item) (item.Item, error) {
	m.itemsMu.Lock()
	defer m.itemsMu.Unlock()

	for _, existing := range m.items {
		if existing.Name == it.Name {
			return existing, nil
		}
	}
	m.items = append(m.items, it)
	return it, nil
}

func (m *Memory) ListItems(_ context.Context) ([]item.Item, error) {
	m.itemsMu.Lock()
	defer m.itemsMu.Unlock()

	result := make([]item.Item, len(m.items))
	copy(result, m.items)
	return result, nil
}

func (m *Memory) GetItem(_ context.Context, id string) (item.Item, error) {
	m.itemsMu.Lock()
	defer m.itemsMu.Unlock()

	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return item.Item{}, apperr.NotFoundf("item with id %s not found", id)
}

func (m *Memory) UpdateItem(_ context.Context, id, name string) (item.Item, error) {
	m.itemsMu.Lock()
	defer m.itemsMu.Unlock()

	for i, it := range m.items {
		if it.ID == id {
			m.items[i].Name = name
			return m.items[i], nil
		}
	}
	return item.Item{}, apperr.NotFoundf("item with id %s not found", id)
}

func (m *Memory) DeleteItem(_ context.Context, id string) error {
	m.itemsMu.Lock()
	defer m.itemsMu.Unlock()

	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("item with id %s not found", id)
}

// UserStore implementation ----------------------------------------------------

// CreateUser is an upsert by email: a duplicate email returns the stored
// record unchanged.
func (m *Memory) CreateUser(_ context.Context, u user.User) (user.User, error) {
	m.usersMu.Lock()
	defer m.usersMu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return existing, nil
		}
	}
	m.users = append(m.users, u)
	return u, nil
}

func (m *Memory) ListUsers(_ context.Context) ([]user.User, error) {
	m.usersMu.Lock()
	defer m.usersMu.Unlock()

	result := make([]user.User, len(m.users))
	copy(result, m.users)
	return result, nil
}

func (m *Memory) GetUser(_ context.Context, id string) (user.User, error) {
	m.usersMu.Lock()
	defer m.usersMu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, apperr.NotFoundf("user with id %s not found", id)
}

func (m *Memory) UpdateUser(_ context.Context, id, email string) (user.User, error) {
	m.usersMu.Lock()
	defer m.usersMu.Unlock()

	for i, u := range m.users {
		if u.ID == id {
			m.users[i].Email = email
			return m.users[i], nil
		}
	}
	return user.User{}, apperr.NotFoundf("user with id %s not found", id)
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.usersMu.Lock()
	defer m.usersMu.Unlock()

	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("user with id %s not found", id)
}
