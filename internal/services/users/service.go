// Package users validates user input before delegating to the user store.
// User ids are UUIDs and every id-based operation rejects ids that do not
// parse as one.
package users

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"crud-service/internal/apperr"
	"crud-service/internal/domain/user"
	"crud-service/internal/storage"
	"crud-service/pkg/logger"
)

// Service manages user records.
type Service struct {
	store storage.UserStore
	log   *logger.Logger
}

// New constructs a user service.
func New(store storage.UserStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("users")
	}
	return &Service{store: store, log: log}
}

func validateID(id string) error {
	if id == "" {
		return apperr.InvalidInput("invalid user id format")
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperr.InvalidInput("invalid user id format")
	}
	return nil
}

// Create stores a new user under a freshly generated id.
func (s *Service) Create(ctx context.Context, email string) (user.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return user.User{}, apperr.InvalidInput("email is required")
	}

	created, err := s.store.CreateUser(ctx, user.User{ID: uuid.NewString(), Email: email})
	if err != nil {
		return user.User{}, err
	}
	s.log.Infof("user %s created", created.ID)
	return created, nil
}

// List returns all stored users.
func (s *Service) List(ctx context.Context) ([]user.User, error) {
	return s.store.ListUsers(ctx)
}

// Get fetches one user by id.
func (s *Service) Get(ctx context.Context, id string) (user.User, error) {
	if err := validateID(id); err != nil {
		return user.User{}, err
	}
	return s.store.GetUser(ctx, id)
}

// Update changes a user's email address.
func (s *Service) Update(ctx context.Context, id, email string) (user.User, error) {
	if err := validateID(id); err != nil {
		return user.User{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return user.User{}, apperr.InvalidInput("email cannot be empty")
	}

	updated, err := s.store.UpdateUser(ctx, id, email)
	if err != nil {
		return user.User{}, err
	}
	s.log.Infof("user %s updated", id)
	return updated, nil
}

// Delete removes a user by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Infof("user %s deleted", id)
	return nil
}
