package trade

import (
	"fmt"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceKey is the composite natural key that identifies an invoice:
// document number, model, series and the counterparty (supplier or customer).
// It is used as-is for lookups instead of ad-hoc string concatenations.
type InvoiceKey struct {
	Number  string    `json:"number"`
	Model   string    `json:"model"`
	Series  string    `json:"series"`
	PartyID uuid.UUID `json:"party_id"`
}

// NewInvoiceKey creates a validated invoice key
func NewInvoiceKey(number, model, series string, partyID uuid.UUID) (InvoiceKey, error) {
	key := InvoiceKey{
		Number:  number,
		Model:   model,
		Series:  series,
		PartyID: partyID,
	}
	if err := key.Validate(); err != nil {
		return InvoiceKey{}, err
	}
	return key, nil
}

// Validate checks that all key components are present
func (k InvoiceKey) Validate() error {
	if k.Number == "" {
		return shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice number cannot be empty")
	}
	if k.Model == "" {
		return shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice model cannot be empty")
	}
	if k.Series == "" {
		return shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice series cannot be empty")
	}
	if k.PartyID == uuid.Nil {
		return shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice counterparty cannot be empty")
	}
	return nil
}

// Equals returns true if both keys identify the same invoice
func (k InvoiceKey) Equals(other InvoiceKey) bool {
	return k.Number == other.Number &&
		k.Model == other.Model &&
		k.Series == other.Series &&
		k.PartyID == other.PartyID
}

// String returns a loggable representation of the key
func (k InvoiceKey) String() string {
	return fmt.Sprintf("%s/%s-%s@%s", k.Number, k.Model, k.Series, k.PartyID)
}
