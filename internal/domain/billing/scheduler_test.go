package billing

import (
	"testing"
	"time"

	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoiceKey(t *testing.T) trade.InvoiceKey {
	t.Helper()
	key, err := trade.NewInvoiceKey("12345", "55", "1", uuid.New())
	require.NoError(t, err)
	return key
}

func testCondition(t *testing.T, entries []PaymentConditionEntry) *PaymentCondition {
	t.Helper()
	pc, err := NewPaymentCondition("Test condition", entries)
	require.NoError(t, err)
	return pc
}

func TestInstallmentScheduler_Generate(t *testing.T) {
	scheduler := NewInstallmentScheduler()
	emission := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	key := testInvoiceKey(t)

	t.Run("no condition yields single installment due on emission", func(t *testing.T) {
		installments, err := scheduler.Generate(InstallmentKindPayable, key, d("1500.00"), emission, nil)
		require.NoError(t, err)
		require.Len(t, installments, 1)

		inst := installments[0]
		assert.Equal(t, 1, inst.Number)
		assert.Equal(t, 1, inst.TotalInstallments)
		assert.True(t, d("1500.00").Equal(inst.OriginalAmount))
		assert.Equal(t, emission, inst.DueDate)
		assert.Equal(t, InstallmentStatusPending, inst.Status)
	})

	t.Run("empty template yields single installment", func(t *testing.T) {
		pc := testCondition(t, nil)
		installments, err := scheduler.Generate(InstallmentKindReceivable, key, d("99.90"), emission, pc)
		require.NoError(t, err)
		require.Len(t, installments, 1)
		assert.True(t, d("99.90").Equal(installments[0].OriginalAmount))
	})

	t.Run("total split evenly with last installment reconciling", func(t *testing.T) {
		pc := testCondition(t, []PaymentConditionEntry{
			{Number: 1, OffsetDays: 0, Percentage: d("50")},
			{Number: 2, OffsetDays: 30, Percentage: d("30")},
			{Number: 3, OffsetDays: 60, Percentage: d("20")},
		})

		installments, err := scheduler.Generate(InstallmentKindPayable, key, d("100.00"), emission, pc)
		require.NoError(t, err)
		require.Len(t, installments, 3)

		// even split regardless of the template percentages
		assert.True(t, d("33.33").Equal(installments[0].OriginalAmount))
		assert.True(t, d("33.33").Equal(installments[1].OriginalAmount))
		assert.True(t, d("33.34").Equal(installments[2].OriginalAmount))

		assert.Equal(t, emission, installments[0].DueDate)
		assert.Equal(t, emission.AddDate(0, 0, 30), installments[1].DueDate)
		assert.Equal(t, emission.AddDate(0, 0, 60), installments[2].DueDate)

		sum := decimal.Zero
		for i, inst := range installments {
			assert.Equal(t, i+1, inst.Number)
			assert.Equal(t, 3, inst.TotalInstallments)
			assert.True(t, key.Equals(inst.InvoiceKey))
			sum = sum.Add(inst.OriginalAmount)
		}
		assert.True(t, d("100.00").Equal(sum))
	})

	t.Run("entry payment method is carried to the installment", func(t *testing.T) {
		methodID := uuid.New()
		pc := testCondition(t, []PaymentConditionEntry{
			{Number: 1, OffsetDays: 0, Percentage: d("60"), PaymentMethodID: &methodID},
			{Number: 2, OffsetDays: 15, Percentage: d("40")},
		})

		installments, err := scheduler.Generate(InstallmentKindReceivable, key, d("200.00"), emission, pc)
		require.NoError(t, err)
		require.Len(t, installments, 2)

		require.NotNil(t, installments[0].PaymentMethodID)
		assert.Equal(t, methodID, *installments[0].PaymentMethodID)
		assert.Nil(t, installments[1].PaymentMethodID)
	})

	t.Run("non-positive total is rejected", func(t *testing.T) {
		_, err := scheduler.Generate(InstallmentKindPayable, key, decimal.Zero, emission, nil)
		assert.Error(t, err)

		_, err = scheduler.Generate(InstallmentKindPayable, key, d("-10"), emission, nil)
		assert.Error(t, err)
	})

	t.Run("total below one cent per entry still yields the full schedule", func(t *testing.T) {
		entries := make([]PaymentConditionEntry, 10)
		for i := range entries {
			entries[i] = PaymentConditionEntry{Number: i + 1, OffsetDays: i * 30, Percentage: d("10")}
		}
		pc := testCondition(t, entries)

		installments, err := scheduler.Generate(InstallmentKindPayable, key, d("0.05"), emission, pc)
		require.NoError(t, err)
		require.Len(t, installments, 10)

		sum := decimal.Zero
		for _, inst := range installments {
			assert.False(t, inst.OriginalAmount.IsNegative(), "installment %d is negative", inst.Number)
			sum = sum.Add(inst.OriginalAmount)
		}
		assert.True(t, d("0.05").Equal(sum), "got %s", sum)
	})

	t.Run("indivisible total still sums exactly", func(t *testing.T) {
		pc := testCondition(t, []PaymentConditionEntry{
			{Number: 1, OffsetDays: 0, Percentage: d("25")},
			{Number: 2, OffsetDays: 30, Percentage: d("25")},
			{Number: 3, OffsetDays: 60, Percentage: d("25")},
			{Number: 4, OffsetDays: 90, Percentage: d("25")},
		})

		installments, err := scheduler.Generate(InstallmentKindPayable, key, d("0.05"), emission, pc)
		require.NoError(t, err)
		require.Len(t, installments, 4)

		sum := decimal.Zero
		for _, inst := range installments {
			sum = sum.Add(inst.OriginalAmount)
		}
		assert.True(t, d("0.05").Equal(sum))
	})
}
