// Package app ties the domain services to their stores.
package app

import (
	"crud-service/internal/services/items"
	"crud-service/internal/services/users"
	"crud-service/internal/storage"
	"crud-service/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to a
// shared in-memory implementation.
type Stores struct {
	Items storage.ItemStore
	Users storage.UserStore
}

// Application bundles the wired domain services.
type Application struct {
	Items *items.Service
	Users *users.Service
}

// New builds an application with the provided stores.
func New(stores Stores, log *logger.Logger) *Application {
	if log == nil {
		log = logger.NewDefault("app")
	}

	if stores.Items == nil || stores.Users == nil {
		mem := storage.NewMemory()
		if stores.Items == nil {
			stores.Items = mem
		}
		if stores.Users == nil {
			stores.Users = mem
		}
	}

	return &Application{
		Items: items.New(stores.Items, log),
		Users: users.New(stores.Users, log),
	}
}
