package billing

import (
	"context"
	"time"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ChargeService manages standalone charges: manually entered payables that
// carry their own interest and penalty rates and settle with daily
// compounding.
type ChargeService struct {
	chargeRepo billing.StandaloneChargeRepository
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewChargeService creates a new ChargeService
func NewChargeService(chargeRepo billing.StandaloneChargeRepository, logger *zap.Logger) *ChargeService {
	return &ChargeService{
		chargeRepo: chargeRepo,
		validate:   validator.New(),
		logger:     logger,
	}
}

// CreateChargeRequest registers a new standalone charge
type CreateChargeRequest struct {
	Description         string          `json:"description" validate:"required,max=200"`
	SupplierID          *uuid.UUID      `json:"supplier_id,omitempty"`
	Amount              decimal.Decimal `json:"amount" validate:"required"`
	EmissionDate        time.Time       `json:"emission_date" validate:"required"`
	DueDate             time.Time       `json:"due_date" validate:"required"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	PenaltyRate         decimal.Decimal `json:"penalty_rate"`
}

// ChargeResponse represents a standalone charge in responses
type ChargeResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Description         string          `json:"description"`
	SupplierID          *uuid.UUID      `json:"supplier_id,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	Discount            decimal.Decimal `json:"discount"`
	Interest            decimal.Decimal `json:"interest"`
	Penalty             decimal.Decimal `json:"penalty"`
	TotalDue            decimal.Decimal `json:"total_due"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	PenaltyRate         decimal.Decimal `json:"penalty_rate"`
	EmissionDate        time.Time       `json:"emission_date"`
	DueDate             time.Time       `json:"due_date"`
	PaymentDate         *time.Time      `json:"payment_date,omitempty"`
	PaymentMethodID     *uuid.UUID      `json:"payment_method_id,omitempty"`
	Status              string          `json:"status"`
	Version             int             `json:"version"`
}

func chargeToResponse(c *billing.StandaloneCharge) *ChargeResponse {
	return &ChargeResponse{
		ID:                  c.ID,
		Description:         c.Description,
		SupplierID:          c.SupplierID,
		Amount:              c.Amount,
		PaidAmount:          c.PaidAmount,
		Discount:            c.Discount,
		Interest:            c.Interest,
		Penalty:             c.Penalty,
		TotalDue:            c.TotalDue,
		MonthlyInterestRate: c.MonthlyInterestRate,
		PenaltyRate:         c.PenaltyRate,
		EmissionDate:        c.EmissionDate,
		DueDate:             c.DueDate,
		PaymentDate:         c.PaymentDate,
		PaymentMethodID:     c.PaymentMethodID,
		Status:              c.Status.String(),
		Version:             c.Version,
	}
}

// CreateCharge registers a new standalone charge
func (s *ChargeService) CreateCharge(ctx context.Context, req CreateChargeRequest) (*ChargeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	charge, err := billing.NewStandaloneCharge(req.Description, req.SupplierID, req.Amount,
		req.EmissionDate, req.DueDate, req.MonthlyInterestRate, req.PenaltyRate)
	if err != nil {
		return nil, err
	}

	if err := s.chargeRepo.Save(ctx, charge); err != nil {
		s.logger.Error("Failed to save charge", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Standalone charge created",
		zap.String("charge_id", charge.ID.String()),
		zap.String("amount", charge.Amount.String()))

	return chargeToResponse(charge), nil
}

// SettleCharge applies a payment to a charge using its configured rates
func (s *ChargeService) SettleCharge(ctx context.Context, chargeID uuid.UUID, req SettleRequest) (*ChargeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	charge, err := s.chargeRepo.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	if req.Discount.IsPositive() {
		if err := charge.ApplyDiscount(req.Discount); err != nil {
			return nil, err
		}
	}
	if err := charge.Settle(req.PaidAmount, req.PaymentDate, req.PaymentMethodID); err != nil {
		return nil, err
	}

	if err := s.chargeRepo.SaveWithLock(ctx, charge); err != nil {
		s.logger.Error("Failed to save settled charge", zap.String("charge_id", chargeID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Standalone charge settled",
		zap.String("charge_id", chargeID.String()),
		zap.String("status", charge.Status.String()))

	return chargeToResponse(charge), nil
}

// CancelCharge cancels a charge
func (s *ChargeService) CancelCharge(ctx context.Context, chargeID uuid.UUID) (*ChargeResponse, error) {
	charge, err := s.chargeRepo.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if err := charge.Cancel(); err != nil {
		return nil, err
	}
	if err := s.chargeRepo.SaveWithLock(ctx, charge); err != nil {
		return nil, err
	}

	s.logger.Info("Standalone charge cancelled", zap.String("charge_id", chargeID.String()))

	return chargeToResponse(charge), nil
}

// GetCharge returns a charge by ID
func (s *ChargeService) GetCharge(ctx context.Context, chargeID uuid.UUID) (*ChargeResponse, error) {
	charge, err := s.chargeRepo.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	return chargeToResponse(charge), nil
}

// ListCharges lists charges, optionally filtered by status
func (s *ChargeService) ListCharges(ctx context.Context, status *billing.ChargeStatus, filter shared.Filter) ([]ChargeResponse, error) {
	var (
		charges []billing.StandaloneCharge
		err     error
	)
	if status != nil {
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Charge status is not valid")
		}
		charges, err = s.chargeRepo.FindByStatus(ctx, *status, filter)
	} else {
		charges, err = s.chargeRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	out := make([]ChargeResponse, 0, len(charges))
	for i := range charges {
		out = append(out, *chargeToResponse(&charges[i]))
	}
	return out, nil
}
