// Package handler provides HTTP request handlers for the contacts API.
package handler

import (
	"context"

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

// Version is the application version.
const Version = "1.0.0"

// ContactService is the business layer the handlers delegate to.
type ContactService interface {
	Retrieve(ctx context.Context, name string) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status string `json:"status"`
}
