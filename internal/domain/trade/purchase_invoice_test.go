package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestKey(t *testing.T) InvoiceKey {
	t.Helper()
	key, err := NewInvoiceKey("12345", "55", "1", uuid.New())
	require.NoError(t, err)
	return key
}

func newTestPurchaseInvoice(t *testing.T) *PurchaseInvoice {
	t.Helper()
	emission := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	inv, err := NewPurchaseInvoice(newTestKey(t), emission, FreightTypeCIF,
		d("50.00"), d("10.00"), d("5.00"), d("15.00"), nil)
	require.NoError(t, err)
	return inv
}

func TestNewPurchaseInvoice(t *testing.T) {
	emission := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	key := newTestKey(t)

	t.Run("valid invoice starts in the normal situation", func(t *testing.T) {
		inv, err := NewPurchaseInvoice(key, emission, FreightTypeFOB,
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)
		require.NoError(t, err)

		assert.Equal(t, InvoiceSituationNormal, inv.Situation)
		assert.Empty(t, inv.Lines)
		assert.Len(t, inv.GetDomainEvents(), 1)
	})

	t.Run("zero emission date is rejected", func(t *testing.T) {
		_, err := NewPurchaseInvoice(key, time.Time{}, FreightTypeCIF,
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)
		assert.Error(t, err)
	})

	t.Run("invalid freight type is rejected", func(t *testing.T) {
		_, err := NewPurchaseInvoice(key, emission, FreightType("TRUCK"),
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)
		assert.Error(t, err)
	})

	t.Run("negative cost amounts are rejected", func(t *testing.T) {
		_, err := NewPurchaseInvoice(key, emission, FreightTypeCIF,
			d("-1"), decimal.Zero, decimal.Zero, decimal.Zero, nil)
		assert.Error(t, err)
	})
}

func TestPurchaseInvoice_Totals(t *testing.T) {
	inv := newTestPurchaseInvoice(t)

	require.NoError(t, inv.AddLine(uuid.New(), d("2"), d("100.00"))) // 200.00
	require.NoError(t, inv.AddLine(uuid.New(), d("3"), d("50.00")))  // 150.00

	assert.True(t, d("350.00").Equal(inv.ProductsTotal()))

	// products + freight + insurance + other - discount
	assert.True(t, d("400.00").Equal(inv.TotalAmount()), "got %s", inv.TotalAmount())
}

func TestPurchaseInvoice_AddLine(t *testing.T) {
	t.Run("sequences are assigned in order", func(t *testing.T) {
		inv := newTestPurchaseInvoice(t)

		require.NoError(t, inv.AddLine(uuid.New(), d("1"), d("10.00")))
		require.NoError(t, inv.AddLine(uuid.New(), d("1"), d("20.00")))

		require.Len(t, inv.Lines, 2)
		assert.Equal(t, 1, inv.Lines[0].Sequence)
		assert.Equal(t, 2, inv.Lines[1].Sequence)
	})

	t.Run("invalid line is rejected", func(t *testing.T) {
		inv := newTestPurchaseInvoice(t)
		assert.Error(t, inv.AddLine(uuid.New(), decimal.Zero, d("10.00")))
		assert.Error(t, inv.AddLine(uuid.Nil, d("1"), d("10.00")))
	})

	t.Run("cancelled invoice rejects new lines", func(t *testing.T) {
		inv := newTestPurchaseInvoice(t)
		require.NoError(t, inv.AddLine(uuid.New(), d("1"), d("10.00")))
		require.NoError(t, inv.Cancel())

		assert.Error(t, inv.AddLine(uuid.New(), d("1"), d("10.00")))
	})
}

func TestPurchaseInvoice_Validate(t *testing.T) {
	inv := newTestPurchaseInvoice(t)

	assert.Error(t, inv.Validate(), "invoice without lines must not validate")

	require.NoError(t, inv.AddLine(uuid.New(), d("1"), d("10.00")))
	assert.NoError(t, inv.Validate())
}

func TestPurchaseInvoice_Cancel(t *testing.T) {
	inv := newTestPurchaseInvoice(t)
	require.NoError(t, inv.AddLine(uuid.New(), d("1"), d("10.00")))

	require.NoError(t, inv.Cancel())
	assert.True(t, inv.IsCancelled())
	assert.NotNil(t, inv.CancelledAt)

	assert.Error(t, inv.Cancel(), "double cancellation must fail")
}

func TestPurchaseInvoice_SetEntryDate(t *testing.T) {
	inv := newTestPurchaseInvoice(t)
	entry := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	inv.SetEntryDate(entry)
	require.NotNil(t, inv.EntryDate)
	assert.Equal(t, entry, *inv.EntryDate)
}
