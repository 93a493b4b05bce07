package trade

// FreightType indicates who is responsible for the freight of an invoice
type FreightType string

const (
	FreightTypeCIF  FreightType = "CIF"  // Freight paid by the issuer
	FreightTypeFOB  FreightType = "FOB"  // Freight paid by the recipient
	FreightTypeNone FreightType = "NONE" // No freight
)

// IsValid checks if the freight type is a valid FreightType
func (f FreightType) IsValid() bool {
	switch f {
	case FreightTypeCIF, FreightTypeFOB, FreightTypeNone:
		return true
	}
	return false
}

// String returns the string representation of FreightType
func (f FreightType) String() string {
	return string(f)
}

// InvoiceSituation represents the lifecycle situation of an invoice
type InvoiceSituation string

const (
	InvoiceSituationNormal    InvoiceSituation = "NORMAL"
	InvoiceSituationCancelled InvoiceSituation = "CANCELLED"
)

// IsValid checks if the situation is a valid InvoiceSituation
func (s InvoiceSituation) IsValid() bool {
	switch s {
	case InvoiceSituationNormal, InvoiceSituationCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceSituation
func (s InvoiceSituation) String() string {
	return string(s)
}
