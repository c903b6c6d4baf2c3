package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crud-service/internal/apperr"
	"crud-service/internal/storage"
)

func TestCreateTrimsEmail(t *testing.T) {
	svc := New(storage.NewMemory(), nil)

	created, err := svc.Create(context.Background(), "  alice@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	require.NotEmpty(t, created.ID)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateRejectsBlankEmail(t *testing.T) {
	svc := New(storage.NewMemory(), nil)

	for _, email := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), email)
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr, "email %q", email)
		assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)
	}
}

func TestIDMustBeUUID(t *testing.T) {
	svc := New(storage.NewMemory(), nil)
	ctx := context.Background()

	for _, id := range []string{"", "abc", "123", "not-a-uuid", "00000000-zzzz-0000-0000-000000000000"} {
		var appErr *apperr.Error

		_, err := svc.Get(ctx, id)
		require.ErrorAs(t, err, &appErr, "get %q", id)
		assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)

		_, err = svc.Update(ctx, id, "a@example.com")
		require.ErrorAs(t, err, &appErr, "update %q", id)
		assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)

		err = svc.Delete(ctx, id)
		require.ErrorAs(t, err, &appErr, "delete %q", id)
		assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)
	}
}

func TestOperationsOnMissingUUID(t *testing.T) {
	svc := New(storage.NewMemory(), nil)
	ctx := context.Background()
	const missing = "123e4567-e89b-12d3-a456-426614174000"

	_, err := svc.Get(ctx, missing)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)

	err = svc.Delete(ctx, missing)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestUpdateValidatesEmail(t *testing.T) {
	svc := New(storage.NewMemory(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "bob@example.com")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, "   ")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)

	updated, err := svc.Update(ctx, created.ID, " bob+new@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "bob+new@example.com", updated.Email)
	assert.Equal(t, created.ID, updated.ID)
}
