package storage

import (
	"context"
	"errors"
	"testing"

	"crud-service/internal/apperr"
	"crud-service/internal/domain/item"
	"crud-service/internal/domain/user"
)

func TestMemoryItemCreateIsUpsertByName(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first, err := store.CreateItem(ctx, item.Item{ID: "id-1", Name: "widget"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second, err := store.CreateItem(ctx, item.Item{ID: "id-2", Name: "widget"})
	if err != nil {
		t.Fatalf("duplicate create: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing record back, got id %s", second.ID)
	}

	items, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestMemoryItemNotFound(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	checks := []struct {
		name string
		call func() error
	}{
		{"get", func() error { _, err := store.GetItem(ctx, "missing"); return err }},
		{"update", func() error { _, err := store.UpdateItem(ctx, "missing", "x"); return err }},
		{"delete", func() error { return store.DeleteItem(ctx, "missing") }},
	}
	for _, c := range checks {
		err := c.call()
		var appErr *apperr.Error
		if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
			t.Fatalf("%s: expected not-found, got %v", c.name, err)
		}
		if appErr.Error() != "item with id missing not found" {
			t.Fatalf("%s: unexpected message %q", c.name, appErr.Error())
		}
	}
}

func TestMemoryItemLifecycle(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	created, err := store.CreateItem(ctx, item.Item{ID: "id-1", Name: "book"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := store.UpdateItem(ctx, created.ID, "novel")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "novel" || updated.ID != created.ID {
		t.Fatalf("unexpected updated record %+v", updated)
	}

	got, err := store.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "novel" {
		t.Fatalf("expected persisted update, got %+v", got)
	}

	if err := store.DeleteItem(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetItem(ctx, created.ID); err == nil {
		t.Fatalf("expected not-found after delete")
	}
}

func TestMemoryUserCreateIsUpsertByEmail(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first, err := store.CreateUser(ctx, user.User{ID: "u-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := store.CreateUser(ctx, user.User{ID: "u-2", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("duplicate create: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing user back, got id %s", second.ID)
	}
}

func TestMemoryUserNotFound(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, err := store.GetUser(ctx, "missing"); err == nil {
		t.Fatalf("expected not-found")
	}
	err := store.DeleteUser(ctx, "missing")
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
	if appErr.Error() != "user with id missing not found" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}
}
