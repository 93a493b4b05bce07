package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// InvoiceSortFields contains allowed sort fields for purchase and sales invoices
var InvoiceSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"number":        true,
	"emission_date": true,
	"situation":     true,
}

// InstallmentSortFields contains allowed sort fields for installments
var InstallmentSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"due_date":       true,
	"emission_date":  true,
	"invoice_number": true,
	"number":         true,
	"status":         true,
}

// PaymentConditionSortFields contains allowed sort fields for payment conditions
var PaymentConditionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// PaymentMethodSortFields contains allowed sort fields for payment methods
var PaymentMethodSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// StandaloneChargeSortFields contains allowed sort fields for standalone charges
var StandaloneChargeSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"due_date":      true,
	"emission_date": true,
	"status":        true,
	"amount":        true,
}

// PartySortFields contains allowed sort fields for customers and suppliers
var PartySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"document":   true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"sale_price": true,
}
