package catalog

import (
	"context"
	"testing"

	"github.com/gestor/backend/internal/domain/catalog"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func newProductService() (*ProductService, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return NewProductService(repo, zap.NewNop()), repo
}

func TestProductService_CreateProduct(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		svc, repo := newProductService()

		resp, err := svc.CreateProduct(context.Background(), CreateProductRequest{
			Code:        "CAFE-500",
			Description: "Café torrado 500g",
			Unit:        "UN",
			SalePrice:   decimal.NewFromFloat(24.90),
		})
		require.NoError(t, err)
		assert.Equal(t, "CAFE-500", resp.Code)
		assert.True(t, resp.Active)
		assert.True(t, resp.LastCost.IsZero())
		assert.Len(t, repo.products, 1)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		svc, _ := newProductService()
		ctx := context.Background()

		_, err := svc.CreateProduct(ctx, CreateProductRequest{
			Code:        "CAFE-500",
			Description: "Café torrado 500g",
			SalePrice:   decimal.NewFromFloat(24.90),
		})
		require.NoError(t, err)

		_, err = svc.CreateProduct(ctx, CreateProductRequest{
			Code:        "CAFE-500",
			Description: "Outro café",
			SalePrice:   decimal.NewFromFloat(19.90),
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("rejects missing description", func(t *testing.T) {
		svc, _ := newProductService()

		_, err := svc.CreateProduct(context.Background(), CreateProductRequest{Code: "X"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestProductService_PriceAndCost(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, CreateProductRequest{
		Code:        "ARROZ-5KG",
		Description: "Arroz branco 5kg",
		SalePrice:   decimal.NewFromInt(32),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSalePrice(ctx, created.ID, decimal.NewFromFloat(34.50))
	require.NoError(t, err)
	assert.True(t, updated.SalePrice.Equal(decimal.NewFromFloat(34.50)))

	require.NoError(t, svc.RecordLastCost(ctx, created.ID, decimal.NewFromFloat(21.7300)))

	found, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.LastCost.Equal(decimal.NewFromFloat(21.73)))
}

func TestProductService_Deactivate(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, CreateProductRequest{
		Code:        "FEIJAO-1KG",
		Description: "Feijão carioca 1kg",
		SalePrice:   decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateProduct(ctx, created.ID))

	found, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.Active)

	err = svc.DeactivateProduct(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
