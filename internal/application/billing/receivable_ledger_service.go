package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceivableLedgerService is the receivable mirror of the payable ledger:
// it registers sales invoices and manages the receivable installments they
// generate.
type ReceivableLedgerService struct {
	invoiceRepo     trade.SalesInvoiceRepository
	installmentRepo billing.InstallmentRepository
	conditionRepo   billing.PaymentConditionRepository
	proration       *billing.ProrationEngine
	scheduler       *billing.InstallmentScheduler
	validate        *validator.Validate
	logger          *zap.Logger
}

// NewReceivableLedgerService creates a new ReceivableLedgerService
func NewReceivableLedgerService(
	invoiceRepo trade.SalesInvoiceRepository,
	installmentRepo billing.InstallmentRepository,
	conditionRepo billing.PaymentConditionRepository,
	logger *zap.Logger,
) *ReceivableLedgerService {
	return &ReceivableLedgerService{
		invoiceRepo:     invoiceRepo,
		installmentRepo: installmentRepo,
		conditionRepo:   conditionRepo,
		proration:       billing.NewProrationEngine(),
		scheduler:       billing.NewInstallmentScheduler(),
		validate:        validator.New(),
		logger:          logger,
	}
}

// SaveSalesInvoice registers a sales invoice, prorates its shared costs and
// regenerates the receivable installment batch for its key
func (s *ReceivableLedgerService) SaveSalesInvoice(ctx context.Context, req SaveSalesInvoiceRequest) (*SaveInvoiceResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	key, err := trade.NewInvoiceKey(req.Number, req.Model, req.Series, req.CustomerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to look up sales invoice", zap.String("key", key.String()), zap.Error(err))
		return nil, err
	}
	if existing != nil && existing.IsCancelled() {
		return nil, shared.NewDomainError("ALREADY_CANCELLED", "Cannot replace a cancelled invoice")
	}

	inv, err := trade.NewSalesInvoice(key, req.EmissionDate, trade.FreightType(req.FreightType),
		req.FreightAmount, req.InsuranceAmount, req.OtherExpenses, req.DiscountAmount,
		req.PaymentConditionID)
	if err != nil {
		return nil, err
	}
	inv.Remark = req.Remark
	if req.DepartureDate != nil {
		inv.SetDepartureDate(*req.DepartureDate)
	}

	for _, line := range req.Lines {
		if err := inv.AddLine(line.ProductID, line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	lines := make([]*trade.InvoiceLine, len(inv.Lines))
	for i := range inv.Lines {
		lines[i] = &inv.Lines[i]
	}
	if err := s.proration.Prorate(lines, inv.FreightAmount, inv.InsuranceAmount, inv.OtherExpenses); err != nil {
		return nil, err
	}

	if existing != nil {
		inv.ID = existing.ID
		inv.CreatedAt = existing.CreatedAt
		inv.Version = existing.Version + 1
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		s.logger.Error("Failed to save sales invoice", zap.String("key", key.String()), zap.Error(err))
		return nil, err
	}

	result := &SaveInvoiceResult{Invoice: salesInvoiceToResponse(inv)}

	installments, warnings := s.regenerateInstallments(ctx, inv)
	result.Installments = installmentsToResponses(installments)
	result.Warnings = warnings

	s.logger.Info("Sales invoice saved",
		zap.String("key", key.String()),
		zap.Int("lines", len(inv.Lines)),
		zap.Int("installments", len(installments)))

	return result, nil
}

// regenerateInstallments replaces the receivable batch for the invoice.
// The invoice is already saved at this point, so nothing here may fail the
// operation: every problem is logged and reported back as a warning.
func (s *ReceivableLedgerService) regenerateInstallments(ctx context.Context, inv *trade.SalesInvoice) ([]*billing.Installment, []string) {
	var warnings []string

	var condition *billing.PaymentCondition
	if inv.PaymentConditionID != nil {
		found, err := s.conditionRepo.FindByID(ctx, *inv.PaymentConditionID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			warnings = append(warnings,
				fmt.Sprintf("payment condition %s not found, scheduling a single installment", inv.PaymentConditionID))
		case err != nil:
			s.logger.Error("Failed to load payment condition", zap.String("key", inv.Key.String()), zap.Error(err))
			return nil, append(warnings, fmt.Sprintf("installments not generated: %v", err))
		default:
			condition = found
		}
	}

	total := inv.TotalAmount()
	if !total.IsPositive() {
		warnings = append(warnings, "invoice total is not positive, no installments generated")
		if err := s.installmentRepo.DeleteForInvoice(ctx, billing.InstallmentKindReceivable, inv.Key); err != nil {
			s.logger.Error("Failed to delete receivable installments", zap.String("key", inv.Key.String()), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("previous installment batch not removed: %v", err))
		}
		return nil, warnings
	}

	installments, err := s.scheduler.Generate(billing.InstallmentKindReceivable, inv.Key, total, inv.EmissionDate, condition)
	if err != nil {
		s.logger.Error("Failed to generate receivable installments", zap.String("key", inv.Key.String()), zap.Error(err))
		return nil, append(warnings, fmt.Sprintf("installments not generated: %v", err))
	}
	if err := s.installmentRepo.ReplaceForInvoice(ctx, billing.InstallmentKindReceivable, inv.Key, installments); err != nil {
		s.logger.Error("Failed to replace receivable installments", zap.String("key", inv.Key.String()), zap.Error(err))
		return nil, append(warnings, fmt.Sprintf("installment batch not stored: %v", err))
	}
	return installments, warnings
}

// CancelSalesInvoice cancels the invoice and every open installment of its
// batch, leaving settled installments untouched
func (s *ReceivableLedgerService) CancelSalesInvoice(ctx context.Context, key trade.InvoiceKey) (*CancelInvoiceResult, error) {
	inv, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := inv.Cancel(); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	// the invoice is cancelled at this point; cascade failures are logged
	// and reported, never propagated
	result := &CancelInvoiceResult{}
	installments, err := s.installmentRepo.FindByInvoiceKey(ctx, billing.InstallmentKindReceivable, key)
	if err != nil {
		s.logger.Error("Failed to load receivable installments for cancellation", zap.String("key", key.String()), zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("installment batch not cancelled: %v", err))
		return result, nil
	}
	for i := range installments {
		inst := &installments[i]
		if inst.IsSettled() {
			result.SkippedSettled++
			continue
		}
		if inst.IsCancelled() {
			continue
		}
		if err := inst.Cancel(); err != nil {
			s.logger.Error("Failed to cancel receivable installment", zap.String("installment_id", inst.ID.String()), zap.Error(err))
			result.Warnings = append(result.Warnings, fmt.Sprintf("installment %d not cancelled: %v", inst.Number, err))
			continue
		}
		if err := s.installmentRepo.SaveWithLock(ctx, inst); err != nil {
			s.logger.Error("Failed to save cancelled installment", zap.String("installment_id", inst.ID.String()), zap.Error(err))
			result.Warnings = append(result.Warnings, fmt.Sprintf("installment %d not cancelled: %v", inst.Number, err))
			continue
		}
		result.CancelledInstallments++
	}

	s.logger.Info("Sales invoice cancelled",
		zap.String("key", key.String()),
		zap.Int("cancelled_installments", result.CancelledInstallments),
		zap.Int("skipped_settled", result.SkippedSettled))

	return result, nil
}

// SettleReceivable applies a received payment to a receivable installment
func (s *ReceivableLedgerService) SettleReceivable(ctx context.Context, installmentID uuid.UUID, req SettleRequest) (*InstallmentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	inst, err := s.installmentRepo.FindByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if inst.Kind != billing.InstallmentKindReceivable {
		return nil, shared.NewDomainError("INVALID_KIND", "Installment does not belong to the receivable ledger")
	}

	if req.Discount.IsPositive() {
		if err := inst.ApplyDiscount(req.Discount); err != nil {
			return nil, err
		}
	}
	if err := inst.Settle(billing.SimpleAccrual{}, req.PaidAmount, req.PaymentDate, req.PaymentMethodID); err != nil {
		return nil, err
	}

	if err := s.installmentRepo.SaveWithLock(ctx, inst); err != nil {
		s.logger.Error("Failed to save settled installment", zap.String("installment_id", installmentID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Receivable installment settled",
		zap.String("installment_id", installmentID.String()),
		zap.String("status", inst.Status.String()),
		zap.String("paid_amount", req.PaidAmount.String()))

	resp := installmentToResponse(inst)
	return &resp, nil
}

// GetSalesInvoice returns an invoice with its installment batch
func (s *ReceivableLedgerService) GetSalesInvoice(ctx context.Context, key trade.InvoiceKey) (*SaveInvoiceResult, error) {
	inv, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	installments, err := s.installmentRepo.FindByInvoiceKey(ctx, billing.InstallmentKindReceivable, key)
	if err != nil {
		return nil, err
	}

	result := &SaveInvoiceResult{Invoice: salesInvoiceToResponse(inv)}
	for i := range installments {
		result.Installments = append(result.Installments, installmentToResponse(&installments[i]))
	}
	return result, nil
}

// ListReceivables lists receivable installments in a given status
func (s *ReceivableLedgerService) ListReceivables(ctx context.Context, status billing.InstallmentStatus, filter shared.Filter) ([]InstallmentResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Status %q is not valid", status))
	}
	installments, err := s.installmentRepo.FindByStatus(ctx, billing.InstallmentKindReceivable, status, filter)
	if err != nil {
		return nil, err
	}
	out := make([]InstallmentResponse, 0, len(installments))
	for i := range installments {
		out = append(out, installmentToResponse(&installments[i]))
	}
	return out, nil
}
