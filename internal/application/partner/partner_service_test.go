package partner

import (
	"context"
	"testing"

	"github.com/gestor/backend/internal/domain/partner"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*partner.Customer)}
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := r.customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindByDocument(_ context.Context, document string) (*partner.Customer, error) {
	for _, c := range r.customers {
		if c.Document == document {
			copied := *c
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Customer, error) {
	out := make([]partner.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(_ context.Context, c *partner.Customer) error {
	copied := *c
	r.customers[c.ID] = &copied
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.customers[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*partner.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*partner.Supplier)}
}

func (r *fakeSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSupplierRepo) FindByDocument(_ context.Context, document string) (*partner.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Document == document {
			copied := *s
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSupplierRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Supplier, error) {
	out := make([]partner.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Save(_ context.Context, s *partner.Supplier) error {
	copied := *s
	r.suppliers[s.ID] = &copied
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.suppliers[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.suppliers, id)
	return nil
}

func newService() (*PartnerService, *fakeCustomerRepo, *fakeSupplierRepo) {
	customerRepo := newFakeCustomerRepo()
	supplierRepo := newFakeSupplierRepo()
	return NewPartnerService(customerRepo, supplierRepo, zap.NewNop()), customerRepo, supplierRepo
}

func TestPartnerService_CreateCustomer(t *testing.T) {
	t.Run("creates customer with contact data", func(t *testing.T) {
		svc, repo, _ := newService()

		resp, err := svc.CreateCustomer(context.Background(), CreatePartyRequest{
			Name:     "Mercado Central Ltda",
			Document: "11222333000144",
			Email:    "compras@mercadocentral.com.br",
		})
		require.NoError(t, err)
		assert.True(t, resp.Active)
		assert.Equal(t, "compras@mercadocentral.com.br", resp.Email)
		assert.Len(t, repo.customers, 1)
	})

	t.Run("rejects duplicate document", func(t *testing.T) {
		svc, _, _ := newService()
		ctx := context.Background()

		_, err := svc.CreateCustomer(ctx, CreatePartyRequest{Name: "First", Document: "11222333000144"})
		require.NoError(t, err)

		_, err = svc.CreateCustomer(ctx, CreatePartyRequest{Name: "Second", Document: "11222333000144"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.CreateCustomer(context.Background(), CreatePartyRequest{
			Name:  "Cliente",
			Email: "not-an-email",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestPartnerService_Suppliers(t *testing.T) {
	svc, _, repo := newService()
	ctx := context.Background()

	resp, err := svc.CreateSupplier(ctx, CreatePartyRequest{Name: "Distribuidora Sul", Document: "99888777000166"})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateSupplier(ctx, resp.ID))

	found, err := svc.GetSupplier(ctx, resp.ID)
	require.NoError(t, err)
	assert.False(t, found.Active)
	assert.Len(t, repo.suppliers, 1)

	all, err := svc.ListSuppliers(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
