// Package model defines data structures used throughout the application.
package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ContactTypeBusiness is the only contact type with extra validation.
const ContactTypeBusiness = "Business"

// Validation errors for Contact.
var (
	ErrContactRequired        = errors.New("Unable to create contact.")            //nolint:staticcheck // client-facing message
	ErrBusinessNumberRequired = errors.New("Business contacts must have a number.") //nolint:staticcheck // client-facing message
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Contact is a named phone entry. Name is the storage and lookup key.
type Contact struct {
	Name   string `json:"name"`
	Number string `json:"number" validate:"required_if=Type Business"`
	Type   string `json:"type"`
}

// IsBusiness reports whether the contact is tagged as a business.
func (c *Contact) IsBusiness() bool {
	return c.Type == ContactTypeBusiness
}

// Validate checks the contact against its business rules.
// Name is intentionally not required here.
func (c *Contact) Validate() error {
	if c == nil {
		return ErrContactRequired
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Field() == "Number" {
					return ErrBusinessNumberRequired
				}
			}
		}
		return err
	}

	return nil
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
