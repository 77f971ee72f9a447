package store

import (
	"context"
	"testing"

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

func TestNewMemoryStore(t *testing.T) {
	// Act
	store := NewMemoryStore()

	// Assert
	if store == nil {
		t.Fatal("NewMemoryStore() returned nil")
	}
	if store.contacts == nil {
		t.Error("contacts map should be initialized")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestMemoryStore_ContextCancellation(t *testing.T) {
	// Arrange
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	created, createErr := store.Create(ctx, &model.Contact{Name: "Pete"})
	got, retrieveErr := store.Retrieve(ctx, "Pete")

	// Assert
	if createErr == nil {
		t.Error("Create() expected error for cancelled context")
	}
	if created {
		t.Error("Create() created = true for cancelled context")
	}
	if retrieveErr == nil {
		t.Error("Retrieve() expected error for cancelled context")
	}
	if got != nil {
		t.Error("Retrieve() should return nil for cancelled context")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestMemoryStore_StoresCopies(t *testing.T) {
	// Arrange
	store := NewMemoryStore()
	ctx := context.Background()
	contact := &model.Contact{Name: "Pete", Number: "5031234567", Type: "Person"}

	if _, err := store.Create(ctx, contact); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	// Act
	contact.Number = "changed"
	got, _ := store.Retrieve(ctx, "Pete")
	got.Type = "changed"
	again, _ := store.Retrieve(ctx, "Pete")

	// Assert
	if again.Number != "5031234567" {
		t.Errorf("Number = %s, caller mutation leaked into store", again.Number)
	}
	if again.Type != "Person" {
		t.Errorf("Type = %s, returned copy mutation leaked into store", again.Type)
	}
}

func TestMemoryStore_Close(t *testing.T) {
	if err := NewMemoryStore().Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
}
