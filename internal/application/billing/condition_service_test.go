package billing

import (
	"context"
	"testing"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConditionService() *ConditionService {
	return NewConditionService(newFakeConditionRepo(), newFakeMethodRepo(), zap.NewNop())
}

func TestConditionService_CreateCondition(t *testing.T) {
	ctx := context.Background()
	service := newConditionService()

	t.Run("creates a valid template", func(t *testing.T) {
		resp, err := service.CreateCondition(ctx, CreateConditionRequest{
			Name: "30/60",
			Entries: []ConditionEntryRequest{
				{Number: 1, OffsetDays: 30, Percentage: d("50")},
				{Number: 2, OffsetDays: 60, Percentage: d("50")},
			},
		})
		require.NoError(t, err)
		assert.True(t, resp.Active)
		assert.Len(t, resp.Entries, 2)
	})

	t.Run("rejects percentages not summing to 100", func(t *testing.T) {
		_, err := service.CreateCondition(ctx, CreateConditionRequest{
			Name: "Broken",
			Entries: []ConditionEntryRequest{
				{Number: 1, OffsetDays: 30, Percentage: d("40")},
			},
		})
		assert.Error(t, err)
	})
}

func TestConditionService_DeactivateCondition(t *testing.T) {
	ctx := context.Background()
	service := newConditionService()

	resp, err := service.CreateCondition(ctx, CreateConditionRequest{Name: "Cash"})
	require.NoError(t, err)

	require.NoError(t, service.DeactivateCondition(ctx, resp.ID))

	got, err := service.GetCondition(ctx, resp.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestConditionService_Methods(t *testing.T) {
	ctx := context.Background()
	service := newConditionService()

	_, err := service.CreateMethod(ctx, CreateMethodRequest{Name: "Bank transfer"})
	require.NoError(t, err)
	_, err = service.CreateMethod(ctx, CreateMethodRequest{Name: ""})
	assert.Error(t, err)

	methods, err := service.ListMethods(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, methods, 1)
}
