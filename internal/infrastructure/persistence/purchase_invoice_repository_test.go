package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseInvoice(t *testing.T, key trade.InvoiceKey) *trade.PurchaseInvoice {
	t.Helper()

	inv, err := trade.NewPurchaseInvoice(
		key,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		trade.FreightTypeCIF,
		decimal.NewFromInt(50), decimal.Zero, decimal.Zero, decimal.Zero,
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, inv.AddLine(uuid.New(), decimal.NewFromInt(2), decimal.NewFromInt(100)))
	require.NoError(t, inv.AddLine(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(300)))
	return inv
}

func TestGormPurchaseInvoiceRepository_SaveAndFindByKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPurchaseInvoiceRepository(db)
	ctx := context.Background()

	key := trade.InvoiceKey{Number: "1001", Model: "55", Series: "1", PartyID: uuid.New()}
	inv := newPurchaseInvoice(t, key)

	require.NoError(t, repo.Save(ctx, inv))

	found, err := repo.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, found.ID)
	assert.True(t, key.Equals(found.Key))
	assert.Len(t, found.Lines, 2)
	assert.Equal(t, 1, found.Lines[0].Sequence)
	assert.Equal(t, 2, found.Lines[1].Sequence)
	assert.True(t, found.TotalAmount().Equal(decimal.NewFromInt(550)))
}

func TestGormPurchaseInvoiceRepository_FindByKey_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPurchaseInvoiceRepository(db)

	key := trade.InvoiceKey{Number: "9999", Model: "55", Series: "1", PartyID: uuid.New()}
	found, err := repo.FindByKey(context.Background(), key)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPurchaseInvoiceRepository_SaveReplacesLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPurchaseInvoiceRepository(db)
	ctx := context.Background()

	key := trade.InvoiceKey{Number: "1002", Model: "55", Series: "1", PartyID: uuid.New()}
	inv := newPurchaseInvoice(t, key)
	require.NoError(t, repo.Save(ctx, inv))

	// Rebuild the invoice with a single line and save again
	inv.Lines = inv.Lines[:0]
	require.NoError(t, inv.AddLine(uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(10)))
	require.NoError(t, repo.Save(ctx, inv))

	found, err := repo.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Len(t, found.Lines, 1)
	assert.True(t, found.Lines[0].LineTotal.Equal(decimal.NewFromInt(50)))
}

func TestGormPurchaseInvoiceRepository_ExistsByKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPurchaseInvoiceRepository(db)
	ctx := context.Background()

	key := trade.InvoiceKey{Number: "1003", Model: "55", Series: "1", PartyID: uuid.New()}
	inv := newPurchaseInvoice(t, key)
	require.NoError(t, repo.Save(ctx, inv))

	exists, err := repo.ExistsByKey(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	other := trade.InvoiceKey{Number: "1003", Model: "55", Series: "2", PartyID: key.PartyID}
	exists, err = repo.ExistsByKey(ctx, other)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormPurchaseInvoiceRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPurchaseInvoiceRepository(db)
	ctx := context.Background()

	key := trade.InvoiceKey{Number: "1004", Model: "55", Series: "1", PartyID: uuid.New()}
	inv := newPurchaseInvoice(t, key)
	require.NoError(t, repo.Save(ctx, inv))

	require.NoError(t, repo.Delete(ctx, key))

	_, err := repo.FindByKey(ctx, key)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, key), shared.ErrNotFound)
}

func TestGormSalesInvoiceRepository_SaveAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	key := trade.InvoiceKey{Number: "2001", Model: "55", Series: "1", PartyID: uuid.New()}
	inv, err := trade.NewSalesInvoice(
		key,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		trade.FreightTypeFOB,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(25),
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, inv.AddLine(uuid.New(), decimal.NewFromInt(3), decimal.NewFromInt(200)))
	require.NoError(t, repo.Save(ctx, inv))

	found, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, key.Equals(found.Key))
	assert.True(t, found.TotalAmount().Equal(decimal.NewFromInt(575)))

	exists, err := repo.ExistsByKey(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}
