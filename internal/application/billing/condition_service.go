package billing

import (
	"context"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConditionService manages the billing lookup aggregates: payment
// conditions and payment methods
type ConditionService struct {
	conditionRepo billing.PaymentConditionRepository
	methodRepo    billing.PaymentMethodRepository
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewConditionService creates a new ConditionService
func NewConditionService(
	conditionRepo billing.PaymentConditionRepository,
	methodRepo billing.PaymentMethodRepository,
	logger *zap.Logger,
) *ConditionService {
	return &ConditionService{
		conditionRepo: conditionRepo,
		methodRepo:    methodRepo,
		validate:      validator.New(),
		logger:        logger,
	}
}

// ConditionEntryRequest is one installment slot of a condition template
type ConditionEntryRequest struct {
	Number          int             `json:"number" validate:"required,min=1"`
	OffsetDays      int             `json:"offset_days" validate:"min=0"`
	Percentage      decimal.Decimal `json:"percentage" validate:"required"`
	PaymentMethodID *uuid.UUID      `json:"payment_method_id,omitempty"`
}

// CreateConditionRequest creates a payment condition template
type CreateConditionRequest struct {
	Name        string                  `json:"name" validate:"required,max=100"`
	Description string                  `json:"description"`
	Entries     []ConditionEntryRequest `json:"entries" validate:"dive"`
}

// ConditionResponse represents a payment condition in responses
type ConditionResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Active      bool                    `json:"active"`
	Entries     []ConditionEntryRequest `json:"entries"`
}

func conditionToResponse(pc *billing.PaymentCondition) *ConditionResponse {
	entries := make([]ConditionEntryRequest, 0, len(pc.Entries))
	for _, e := range pc.Entries {
		entries = append(entries, ConditionEntryRequest{
			Number:          e.Number,
			OffsetDays:      e.OffsetDays,
			Percentage:      e.Percentage,
			PaymentMethodID: e.PaymentMethodID,
		})
	}
	return &ConditionResponse{
		ID:          pc.ID,
		Name:        pc.Name,
		Description: pc.Description,
		Active:      pc.Active,
		Entries:     entries,
	}
}

// CreateCondition creates a new payment condition template
func (s *ConditionService) CreateCondition(ctx context.Context, req CreateConditionRequest) (*ConditionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	entries := make([]billing.PaymentConditionEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, billing.PaymentConditionEntry{
			Number:          e.Number,
			OffsetDays:      e.OffsetDays,
			Percentage:      e.Percentage,
			PaymentMethodID: e.PaymentMethodID,
		})
	}

	pc, err := billing.NewPaymentCondition(req.Name, entries)
	if err != nil {
		return nil, err
	}
	pc.Description = req.Description

	if err := s.conditionRepo.Save(ctx, pc); err != nil {
		s.logger.Error("Failed to save payment condition", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment condition created",
		zap.String("condition_id", pc.ID.String()),
		zap.String("name", pc.Name),
		zap.Int("entries", pc.EntryCount()))

	return conditionToResponse(pc), nil
}

// GetCondition returns a payment condition by ID
func (s *ConditionService) GetCondition(ctx context.Context, id uuid.UUID) (*ConditionResponse, error) {
	pc, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return conditionToResponse(pc), nil
}

// ListConditions lists payment conditions
func (s *ConditionService) ListConditions(ctx context.Context, filter shared.Filter) ([]ConditionResponse, error) {
	conditions, err := s.conditionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]ConditionResponse, 0, len(conditions))
	for i := range conditions {
		out = append(out, *conditionToResponse(&conditions[i]))
	}
	return out, nil
}

// DeactivateCondition marks a condition inactive so new invoices stop
// referencing it. Existing invoices keep their reference.
func (s *ConditionService) DeactivateCondition(ctx context.Context, id uuid.UUID) error {
	pc, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	pc.Deactivate()
	return s.conditionRepo.Save(ctx, pc)
}

// CreateMethodRequest creates a payment method
type CreateMethodRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// MethodResponse represents a payment method in responses
type MethodResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// CreateMethod creates a new payment method
func (s *ConditionService) CreateMethod(ctx context.Context, req CreateMethodRequest) (*MethodResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	method, err := billing.NewPaymentMethod(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	s.logger.Info("Payment method created", zap.String("method_id", method.ID.String()), zap.String("name", method.Name))

	return &MethodResponse{ID: method.ID, Name: method.Name, Active: method.Active}, nil
}

// ListMethods lists payment methods
func (s *ConditionService) ListMethods(ctx context.Context, filter shared.Filter) ([]MethodResponse, error) {
	methods, err := s.methodRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]MethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, MethodResponse{ID: m.ID, Name: m.Name, Active: m.Active})
	}
	return out, nil
}
