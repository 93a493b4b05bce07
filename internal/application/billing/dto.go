package billing

import (
	"time"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest is one line item of an invoice being registered
type InvoiceLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SavePurchaseInvoiceRequest registers or replaces a purchase invoice.
// Saving the same natural key again replaces the invoice and regenerates
// its installment batch.
type SavePurchaseInvoiceRequest struct {
	Number             string               `json:"number" validate:"required"`
	Model              string               `json:"model" validate:"required"`
	Series             string               `json:"series" validate:"required"`
	SupplierID         uuid.UUID            `json:"supplier_id" validate:"required"`
	EmissionDate       time.Time            `json:"emission_date" validate:"required"`
	EntryDate          *time.Time           `json:"entry_date,omitempty"`
	FreightType        string               `json:"freight_type" validate:"required,oneof=CIF FOB NONE"`
	FreightAmount      decimal.Decimal      `json:"freight_amount"`
	InsuranceAmount    decimal.Decimal      `json:"insurance_amount"`
	OtherExpenses      decimal.Decimal      `json:"other_expenses"`
	DiscountAmount     decimal.Decimal      `json:"discount_amount"`
	PaymentConditionID *uuid.UUID           `json:"payment_condition_id,omitempty"`
	Remark             string               `json:"remark"`
	Lines              []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SaveSalesInvoiceRequest registers or replaces a sales invoice
type SaveSalesInvoiceRequest struct {
	Number             string               `json:"number" validate:"required"`
	Model              string               `json:"model" validate:"required"`
	Series             string               `json:"series" validate:"required"`
	CustomerID         uuid.UUID            `json:"customer_id" validate:"required"`
	EmissionDate       time.Time            `json:"emission_date" validate:"required"`
	DepartureDate      *time.Time           `json:"departure_date,omitempty"`
	FreightType        string               `json:"freight_type" validate:"required,oneof=CIF FOB NONE"`
	FreightAmount      decimal.Decimal      `json:"freight_amount"`
	InsuranceAmount    decimal.Decimal      `json:"insurance_amount"`
	OtherExpenses      decimal.Decimal      `json:"other_expenses"`
	DiscountAmount     decimal.Decimal      `json:"discount_amount"`
	PaymentConditionID *uuid.UUID           `json:"payment_condition_id,omitempty"`
	Remark             string               `json:"remark"`
	Lines              []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SettleRequest applies a payment to an installment or charge
type SettleRequest struct {
	PaidAmount      decimal.Decimal `json:"paid_amount" validate:"required"`
	PaymentDate     time.Time       `json:"payment_date" validate:"required"`
	PaymentMethodID *uuid.UUID      `json:"payment_method_id,omitempty"`
	Discount        decimal.Decimal `json:"discount"`
}

// InvoiceLineResponse is a line item with its prorated cost shares
type InvoiceLineResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Sequence       int             `json:"sequence"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
	FreightShare   decimal.Decimal `json:"freight_share"`
	InsuranceShare decimal.Decimal `json:"insurance_share"`
	OtherShare     decimal.Decimal `json:"other_share"`
	LandedCost     decimal.Decimal `json:"landed_cost"`
}

// InvoiceResponse represents an invoice in responses, shared by the
// payable and receivable ledgers
type InvoiceResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Number             string                `json:"number"`
	Model              string                `json:"model"`
	Series             string                `json:"series"`
	PartyID            uuid.UUID             `json:"party_id"`
	EmissionDate       time.Time             `json:"emission_date"`
	FreightType        string                `json:"freight_type"`
	Situation          string                `json:"situation"`
	FreightAmount      decimal.Decimal       `json:"freight_amount"`
	InsuranceAmount    decimal.Decimal       `json:"insurance_amount"`
	OtherExpenses      decimal.Decimal       `json:"other_expenses"`
	DiscountAmount     decimal.Decimal       `json:"discount_amount"`
	ProductsTotal      decimal.Decimal       `json:"products_total"`
	TotalAmount        decimal.Decimal       `json:"total_amount"`
	PaymentConditionID *uuid.UUID            `json:"payment_condition_id,omitempty"`
	Remark             string                `json:"remark,omitempty"`
	Lines              []InvoiceLineResponse `json:"lines"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// InstallmentResponse represents an installment in responses
type InstallmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	Kind              string          `json:"kind"`
	Number            int             `json:"number"`
	TotalInstallments int             `json:"total_installments"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Discount          decimal.Decimal `json:"discount"`
	Interest          decimal.Decimal `json:"interest"`
	Penalty           decimal.Decimal `json:"penalty"`
	TotalDue          decimal.Decimal `json:"total_due"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	EmissionDate      time.Time       `json:"emission_date"`
	DueDate           time.Time       `json:"due_date"`
	PaymentDate       *time.Time      `json:"payment_date,omitempty"`
	PaymentMethodID   *uuid.UUID      `json:"payment_method_id,omitempty"`
	Status            string          `json:"status"`
	Version           int             `json:"version"`
}

// SaveInvoiceResult is the outcome of registering an invoice. Warnings
// carry non-fatal problems (for example a missing payment condition) that
// did not prevent the save.
type SaveInvoiceResult struct {
	Invoice      *InvoiceResponse      `json:"invoice"`
	Installments []InstallmentResponse `json:"installments"`
	Warnings     []string              `json:"warnings,omitempty"`
}

// CancelInvoiceResult is the outcome of cancelling an invoice. Settled
// installments are left untouched and reported. Warnings carry cascade
// failures that did not prevent the cancellation itself.
type CancelInvoiceResult struct {
	CancelledInstallments int      `json:"cancelled_installments"`
	SkippedSettled        int      `json:"skipped_settled"`
	Warnings              []string `json:"warnings,omitempty"`
}

func lineToResponse(l trade.InvoiceLine) InvoiceLineResponse {
	return InvoiceLineResponse{
		ID:             l.ID,
		ProductID:      l.ProductID,
		Sequence:       l.Sequence,
		Quantity:       l.Quantity,
		UnitPrice:      l.UnitPrice,
		LineTotal:      l.LineTotal,
		FreightShare:   l.FreightShare,
		InsuranceShare: l.InsuranceShare,
		OtherShare:     l.OtherShare,
		LandedCost:     l.LandedCost,
	}
}

func purchaseInvoiceToResponse(inv *trade.PurchaseInvoice) *InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, lineToResponse(l))
	}
	return &InvoiceResponse{
		ID:                 inv.ID,
		Number:             inv.Key.Number,
		Model:              inv.Key.Model,
		Series:             inv.Key.Series,
		PartyID:            inv.Key.PartyID,
		EmissionDate:       inv.EmissionDate,
		FreightType:        inv.FreightType.String(),
		Situation:          inv.Situation.String(),
		FreightAmount:      inv.FreightAmount,
		InsuranceAmount:    inv.InsuranceAmount,
		OtherExpenses:      inv.OtherExpenses,
		DiscountAmount:     inv.DiscountAmount,
		ProductsTotal:      inv.ProductsTotal(),
		TotalAmount:        inv.TotalAmount(),
		PaymentConditionID: inv.PaymentConditionID,
		Remark:             inv.Remark,
		Lines:              lines,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func salesInvoiceToResponse(inv *trade.SalesInvoice) *InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, lineToResponse(l))
	}
	return &InvoiceResponse{
		ID:                 inv.ID,
		Number:             inv.Key.Number,
		Model:              inv.Key.Model,
		Series:             inv.Key.Series,
		PartyID:            inv.Key.PartyID,
		EmissionDate:       inv.EmissionDate,
		FreightType:        inv.FreightType.String(),
		Situation:          inv.Situation.String(),
		FreightAmount:      inv.FreightAmount,
		InsuranceAmount:    inv.InsuranceAmount,
		OtherExpenses:      inv.OtherExpenses,
		DiscountAmount:     inv.DiscountAmount,
		ProductsTotal:      inv.ProductsTotal(),
		TotalAmount:        inv.TotalAmount(),
		PaymentConditionID: inv.PaymentConditionID,
		Remark:             inv.Remark,
		Lines:              lines,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func installmentToResponse(i *billing.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                i.ID,
		Kind:              i.Kind.String(),
		Number:            i.Number,
		TotalInstallments: i.TotalInstallments,
		OriginalAmount:    i.OriginalAmount,
		PaidAmount:        i.PaidAmount,
		Discount:          i.Discount,
		Interest:          i.Interest,
		Penalty:           i.Penalty,
		TotalDue:          i.TotalDue,
		Outstanding:       i.OutstandingAmount(),
		EmissionDate:      i.EmissionDate,
		DueDate:           i.DueDate,
		PaymentDate:       i.PaymentDate,
		PaymentMethodID:   i.PaymentMethodID,
		Status:            i.Status.String(),
		Version:           i.Version,
	}
}

func installmentsToResponses(installments []*billing.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(installments))
	for _, i := range installments {
		out = append(out, installmentToResponse(i))
	}
	return out
}
