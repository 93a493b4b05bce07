package billing

import (
	"context"
	"testing"
	"time"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChargeService() (*ChargeService, *fakeChargeRepo) {
	repo := newFakeChargeRepo()
	return NewChargeService(repo, zap.NewNop()), repo
}

func baseChargeRequest() CreateChargeRequest {
	return CreateChargeRequest{
		Description:         "Office rent",
		Amount:              d("1000.00"),
		EmissionDate:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:             time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		MonthlyInterestRate: d("3"),
		PenaltyRate:         d("2"),
	}
}

func TestChargeService_CreateCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending charge", func(t *testing.T) {
		service, _ := newChargeService()

		resp, err := service.CreateCharge(ctx, baseChargeRequest())
		require.NoError(t, err)

		assert.Equal(t, billing.ChargeStatusPending.String(), resp.Status)
		assert.True(t, d("1000.00").Equal(resp.TotalDue))
		assert.True(t, d("3").Equal(resp.MonthlyInterestRate))
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		service, _ := newChargeService()
		req := baseChargeRequest()
		req.Description = ""

		_, err := service.CreateCharge(ctx, req)
		assert.Error(t, err)
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		service, _ := newChargeService()
		req := baseChargeRequest()
		req.PenaltyRate = d("-2")

		_, err := service.CreateCharge(ctx, req)
		assert.Error(t, err)
	})
}

func TestChargeService_SettleCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("late settlement uses the charge's own compounding rates", func(t *testing.T) {
		service, _ := newChargeService()
		created, err := service.CreateCharge(ctx, baseChargeRequest())
		require.NoError(t, err)

		resp, err := service.SettleCharge(ctx, created.ID, SettleRequest{
			PaidAmount:  d("1030.05"),
			PaymentDate: created.DueDate.AddDate(0, 0, 10),
		})
		require.NoError(t, err)

		assert.Equal(t, billing.ChargeStatusPaid.String(), resp.Status)
		assert.True(t, d("10.05").Equal(resp.Interest), "got %s", resp.Interest)
		assert.True(t, d("20.00").Equal(resp.Penalty))
	})

	t.Run("on-time settlement ignores the configured rates", func(t *testing.T) {
		service, _ := newChargeService()
		created, err := service.CreateCharge(ctx, baseChargeRequest())
		require.NoError(t, err)

		resp, err := service.SettleCharge(ctx, created.ID, SettleRequest{
			PaidAmount:  d("1000.00"),
			PaymentDate: created.DueDate,
		})
		require.NoError(t, err)

		assert.Equal(t, billing.ChargeStatusPaid.String(), resp.Status)
		assert.True(t, resp.Interest.IsZero())
		assert.True(t, resp.Penalty.IsZero())
	})

	t.Run("partial settlement leaves the charge open", func(t *testing.T) {
		service, _ := newChargeService()
		created, err := service.CreateCharge(ctx, baseChargeRequest())
		require.NoError(t, err)

		resp, err := service.SettleCharge(ctx, created.ID, SettleRequest{
			PaidAmount:  d("300.00"),
			PaymentDate: created.DueDate,
		})
		require.NoError(t, err)
		assert.Equal(t, billing.ChargeStatusPartiallyPaid.String(), resp.Status)
	})

	t.Run("discount reduces the total due", func(t *testing.T) {
		service, _ := newChargeService()
		created, err := service.CreateCharge(ctx, baseChargeRequest())
		require.NoError(t, err)

		resp, err := service.SettleCharge(ctx, created.ID, SettleRequest{
			PaidAmount:  d("900.00"),
			PaymentDate: created.DueDate,
			Discount:    d("100.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, billing.ChargeStatusPaid.String(), resp.Status)
		assert.True(t, d("900.00").Equal(resp.TotalDue))
	})

	t.Run("unknown charge is rejected", func(t *testing.T) {
		service, _ := newChargeService()
		_, err := service.SettleCharge(ctx, uuid.New(), SettleRequest{
			PaidAmount:  d("10.00"),
			PaymentDate: time.Now(),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestChargeService_CancelCharge(t *testing.T) {
	ctx := context.Background()
	service, _ := newChargeService()

	created, err := service.CreateCharge(ctx, baseChargeRequest())
	require.NoError(t, err)

	resp, err := service.CancelCharge(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.ChargeStatusCancelled.String(), resp.Status)

	_, err = service.CancelCharge(ctx, created.ID)
	assert.Error(t, err)
}

func TestChargeService_ListCharges(t *testing.T) {
	ctx := context.Background()
	service, _ := newChargeService()

	first, err := service.CreateCharge(ctx, baseChargeRequest())
	require.NoError(t, err)
	_, err = service.CreateCharge(ctx, baseChargeRequest())
	require.NoError(t, err)

	_, err = service.SettleCharge(ctx, first.ID, SettleRequest{
		PaidAmount:  d("1000.00"),
		PaymentDate: first.DueDate,
	})
	require.NoError(t, err)

	all, err := service.ListCharges(ctx, nil, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending := billing.ChargeStatusPending
	open, err := service.ListCharges(ctx, &pending, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, open, 1)
}
