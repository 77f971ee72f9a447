// Package service holds the contact business rules that sit between the
// HTTP handlers and the store.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/contacts-api/internal/model"
	"github.com/vyrodovalexey/contacts-api/internal/store"
)

// Rejection reasons used as metric labels.
const (
	reasonMissingContact = "missing_contact"
	reasonBusinessNumber = "business_number"
)

var (
	contactsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_created_total",
			Help: "Total number of contacts persisted",
		},
	)

	contactsDuplicateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_duplicate_total",
			Help: "Total number of create calls ignored because the name was taken",
		},
	)

	contactsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contacts_rejected_total",
			Help: "Total number of create calls rejected by validation",
		},
		[]string{"reason"},
	)
)

// ValidationError reports a business-rule violation detected before persistence.
type ValidationError struct {
	Err error
}

// Error returns the client-facing message.
func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying rule so errors.Is matches model sentinels.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ContactService validates contacts and delegates persistence to a Store.
type ContactService struct {
	store  store.Store
	logger *zap.Logger
}

// NewContactService creates a ContactService backed by s.
func NewContactService(s store.Store, logger *zap.Logger) *ContactService {
	return &ContactService{
		store:  s,
		logger: logger,
	}
}

// Retrieve returns the contact named name, or nil when name is empty or unknown.
func (s *ContactService) Retrieve(ctx context.Context, name string) (*model.Contact, error) {
	if name == "" {
		return nil, nil
	}

	contact, err := s.store.Retrieve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("retrieve contact %q: %w", name, err)
	}

	return contact, nil
}

// Create validates contact and persists it. Creating a name that already
// exists leaves the stored contact unchanged and is not an error.
func (s *ContactService) Create(ctx context.Context, contact *model.Contact) error {
	if err := contact.Validate(); err != nil {
		s.reject(err)
		return &ValidationError{Err: err}
	}

	created, err := s.store.Create(ctx, contact)
	if err != nil {
		return fmt.Errorf("create contact %q: %w", contact.Name, err)
	}

	if !created {
		contactsDuplicateTotal.Inc()
		s.logger.Debug("contact already exists, create ignored",
			zap.String("name", contact.Name),
		)
		return nil
	}

	contactsCreatedTotal.Inc()
	s.logger.Debug("contact created",
		zap.String("name", contact.Name),
		zap.String("type", contact.Type),
	)

	return nil
}

// reject records why a contact failed validation.
func (s *ContactService) reject(err error) {
	reason := "other"
	switch {
	case errors.Is(err, model.ErrContactRequired):
		reason = reasonMissingContact
	case errors.Is(err, model.ErrBusinessNumberRequired):
		reason = reasonBusinessNumber
	}

	contactsRejectedTotal.WithLabelValues(reason).Inc()
	s.logger.Debug("contact rejected", zap.String("reason", reason), zap.Error(err))
}
