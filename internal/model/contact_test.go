package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestContact_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact *Contact
		wantErr error
	}{
		{
			name:    "person with number",
			contact: &Contact{Name: "Pete", Number: "5031234567", Type: "Person"},
			wantErr: nil,
		},
		{
			name:    "person without number",
			contact: &Contact{Name: "Pete", Type: "Person"},
			wantErr: nil,
		},
		{
			name:    "empty type without number",
			contact: &Contact{Name: "Anon"},
			wantErr: nil,
		},
		{
			name:    "lowercase business is unconstrained",
			contact: &Contact{Name: "Shop", Type: "business"},
			wantErr: nil,
		},
		{
			name:    "business with number",
			contact: &Contact{Name: "Acme", Number: "8005550100", Type: ContactTypeBusiness},
			wantErr: nil,
		},
		{
			name:    "business without number",
			contact: &Contact{Name: "Acme", Number: "", Type: ContactTypeBusiness},
			wantErr: ErrBusinessNumberRequired,
		},
		{
			name:    "empty name is accepted",
			contact: &Contact{Number: "1"},
			wantErr: nil,
		},
		{
			name:    "nil contact",
			contact: nil,
			wantErr: ErrContactRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.contact.Validate()

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestContact_IsBusiness(t *testing.T) {
	if !(&Contact{Type: "Business"}).IsBusiness() {
		t.Error("IsBusiness() = false for Business type")
	}
	if (&Contact{Type: "Person"}).IsBusiness() {
		t.Error("IsBusiness() = true for Person type")
	}
}

func TestValidationMessages(t *testing.T) {
	if ErrContactRequired.Error() != "Unable to create contact." {
		t.Errorf("ErrContactRequired = %q", ErrContactRequired.Error())
	}
	if ErrBusinessNumberRequired.Error() != "Business contacts must have a number." {
		t.Errorf("ErrBusinessNumberRequired = %q", ErrBusinessNumberRequired.Error())
	}
}

func TestContact_JSONFieldNames(t *testing.T) {
	// Arrange
	raw := `{"name":"Pete","number":"5031234567","type":"Person"}`

	// Act
	var c Contact
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	// Assert
	want := Contact{Name: "Pete", Number: "5031234567", Type: "Person"}
	if c != want {
		t.Errorf("decoded contact = %+v, want %+v", c, want)
	}
}
