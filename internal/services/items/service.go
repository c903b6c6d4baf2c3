// Package items validates and normalizes item input before delegating to
// the item store.
package items

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"crud-service/internal/apperr"
	"crud-service/internal/domain/item"
	"crud-service/internal/storage"
	"crud-service/pkg/logger"
)

// Service manages item records.
type Service struct {
	store storage.ItemStore
	log   *logger.Logger
}

// New constructs an item service.
func New(store storage.ItemStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("items")
	}
	return &Service{store: store, log: log}
}

// Create stores a new item under a freshly generated id. The name is
// trimmed and lower-cased before validation.
func (s *Service) Create(ctx context.Context, name string) (item.Item, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return item.Item{}, apperr.InvalidInput("item name cannot be empty")
	}

	created, err := s.store.CreateItem(ctx, item.Item{ID: uuid.NewString(), Name: name})
	if err != nil {
		return item.Item{}, err
	}
	s.log.Infof("item %s created", created.ID)
	return created, nil
}

// List returns all stored items.
func (s *Service) List(ctx context.Context) ([]item.Item, error) {
	return s.store.ListItems(ctx)
}

// Get fetches one item by id.
func (s *Service) Get(ctx context.Context, id string) (item.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return item.Item{}, apperr.InvalidInput("item id cannot be empty")
	}
	return s.store.GetItem(ctx, id)
}

// Update renames an existing item. The id is immutable.
func (s *Service) Update(ctx context.Context, id, name string) (item.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return item.Item{}, apperr.InvalidInput("item id cannot be empty")
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return item.Item{}, apperr.InvalidInput("item name cannot be empty")
	}

	updated, err := s.store.UpdateItem(ctx, id, name)
	if err != nil {
		return item.Item{}, err
	}
	s.log.Infof("item %s updated", id)
	return updated, nil
}

// Delete removes an item by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.InvalidInput("item id cannot be empty")
	}

	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.log.Infof("item %s deleted", id)
	return nil
}
