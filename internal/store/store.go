// Package store provides data storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

// Store errors.
var (
	ErrNilContact     = errors.New("contact cannot be nil")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Store defines the interface for contact storage keyed by contact name.
type Store interface {
	// Create inserts the contact under its name unless the name is already
	// taken. A duplicate is not an error; created reports which happened.
	Create(ctx context.Context, contact *model.Contact) (created bool, err error)

	// Retrieve returns the contact stored under name, or nil if there is none.
	Retrieve(ctx context.Context, name string) (*model.Contact, error)

	// Close releases any resources held by the store.
	Close() error
}
