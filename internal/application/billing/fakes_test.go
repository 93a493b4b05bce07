package billing

import (
	"context"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
)

type fakePurchaseInvoiceRepo struct {
	invoices map[string]*trade.PurchaseInvoice
}

func newFakePurchaseInvoiceRepo() *fakePurchaseInvoiceRepo {
	return &fakePurchaseInvoiceRepo{invoices: make(map[string]*trade.PurchaseInvoice)}
}

func (r *fakePurchaseInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.PurchaseInvoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseInvoiceRepo) FindByKey(_ context.Context, key trade.InvoiceKey) (*trade.PurchaseInvoice, error) {
	inv, ok := r.invoices[key.String()]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

func (r *fakePurchaseInvoiceRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.PurchaseInvoice, error) {
	out := make([]trade.PurchaseInvoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *fakePurchaseInvoiceRepo) ExistsByKey(_ context.Context, key trade.InvoiceKey) (bool, error) {
	_, ok := r.invoices[key.String()]
	return ok, nil
}

func (r *fakePurchaseInvoiceRepo) Save(_ context.Context, invoice *trade.PurchaseInvoice) error {
	r.invoices[invoice.Key.String()] = invoice
	return nil
}

func (r *fakePurchaseInvoiceRepo) Delete(_ context.Context, key trade.InvoiceKey) error {
	delete(r.invoices, key.String())
	return nil
}

type fakeSalesInvoiceRepo struct {
	invoices map[string]*trade.SalesInvoice
}

func newFakeSalesInvoiceRepo() *fakeSalesInvoiceRepo {
	return &fakeSalesInvoiceRepo{invoices: make(map[string]*trade.SalesInvoice)}
}

func (r *fakeSalesInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.SalesInvoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSalesInvoiceRepo) FindByKey(_ context.Context, key trade.InvoiceKey) (*trade.SalesInvoice, error) {
	inv, ok := r.invoices[key.String()]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

func (r *fakeSalesInvoiceRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.SalesInvoice, error) {
	out := make([]trade.SalesInvoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *fakeSalesInvoiceRepo) ExistsByKey(_ context.Context, key trade.InvoiceKey) (bool, error) {
	_, ok := r.invoices[key.String()]
	return ok, nil
}

func (r *fakeSalesInvoiceRepo) Save(_ context.Context, invoice *trade.SalesInvoice) error {
	r.invoices[invoice.Key.String()] = invoice
	return nil
}

func (r *fakeSalesInvoiceRepo) Delete(_ context.Context, key trade.InvoiceKey) error {
	delete(r.invoices, key.String())
	return nil
}

type fakeInstallmentRepo struct {
	installments map[uuid.UUID]*billing.Installment
}

func newFakeInstallmentRepo() *fakeInstallmentRepo {
	return &fakeInstallmentRepo{installments: make(map[uuid.UUID]*billing.Installment)}
}

func (r *fakeInstallmentRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Installment, error) {
	inst, ok := r.installments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inst, nil
}

func (r *fakeInstallmentRepo) FindByInvoiceKey(_ context.Context, kind billing.InstallmentKind, key trade.InvoiceKey) ([]billing.Installment, error) {
	var out []billing.Installment
	for n := 1; ; n++ {
		found := false
		for _, inst := range r.installments {
			if inst.Kind == kind && inst.InvoiceKey.Equals(key) && inst.Number == n {
				out = append(out, *inst)
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return out, nil
}

func (r *fakeInstallmentRepo) FindByStatus(_ context.Context, kind billing.InstallmentKind, status billing.InstallmentStatus, _ shared.Filter) ([]billing.Installment, error) {
	var out []billing.Installment
	for _, inst := range r.installments {
		if inst.Kind == kind && inst.Status == status {
			out = append(out, *inst)
		}
	}
	return out, nil
}

func (r *fakeInstallmentRepo) ReplaceForInvoice(ctx context.Context, kind billing.InstallmentKind, key trade.InvoiceKey, installments []*billing.Installment) error {
	if err := r.DeleteForInvoice(ctx, kind, key); err != nil {
		return err
	}
	for _, inst := range installments {
		r.installments[inst.ID] = inst
	}
	return nil
}

func (r *fakeInstallmentRepo) DeleteForInvoice(_ context.Context, kind billing.InstallmentKind, key trade.InvoiceKey) error {
	for id, inst := range r.installments {
		if inst.Kind == kind && inst.InvoiceKey.Equals(key) {
			delete(r.installments, id)
		}
	}
	return nil
}

func (r *fakeInstallmentRepo) Save(_ context.Context, installment *billing.Installment) error {
	r.installments[installment.ID] = installment
	return nil
}

func (r *fakeInstallmentRepo) SaveWithLock(_ context.Context, installment *billing.Installment) error {
	r.installments[installment.ID] = installment
	return nil
}

// failingInstallmentRepo wraps the in-memory fake and fails selected
// operations to exercise the partial-failure policy of the ledgers
type failingInstallmentRepo struct {
	*fakeInstallmentRepo
	replaceErr error
	lockErr    error
}

func (r *failingInstallmentRepo) ReplaceForInvoice(ctx context.Context, kind billing.InstallmentKind, key trade.InvoiceKey, installments []*billing.Installment) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	return r.fakeInstallmentRepo.ReplaceForInvoice(ctx, kind, key, installments)
}

func (r *failingInstallmentRepo) SaveWithLock(ctx context.Context, installment *billing.Installment) error {
	if r.lockErr != nil {
		return r.lockErr
	}
	return r.fakeInstallmentRepo.SaveWithLock(ctx, installment)
}

type fakeConditionRepo struct {
	conditions map[uuid.UUID]*billing.PaymentCondition
}

func newFakeConditionRepo() *fakeConditionRepo {
	return &fakeConditionRepo{conditions: make(map[uuid.UUID]*billing.PaymentCondition)}
}

func (r *fakeConditionRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.PaymentCondition, error) {
	pc, ok := r.conditions[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return pc, nil
}

func (r *fakeConditionRepo) FindAll(_ context.Context, _ shared.Filter) ([]billing.PaymentCondition, error) {
	out := make([]billing.PaymentCondition, 0, len(r.conditions))
	for _, pc := range r.conditions {
		out = append(out, *pc)
	}
	return out, nil
}

func (r *fakeConditionRepo) Save(_ context.Context, condition *billing.PaymentCondition) error {
	r.conditions[condition.ID] = condition
	return nil
}

func (r *fakeConditionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.conditions, id)
	return nil
}

type fakeMethodRepo struct {
	methods map[uuid.UUID]*billing.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[uuid.UUID]*billing.PaymentMethod)}
}

func (r *fakeMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return m, nil
}

func (r *fakeMethodRepo) FindAll(_ context.Context, _ shared.Filter) ([]billing.PaymentMethod, error) {
	out := make([]billing.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMethodRepo) Save(_ context.Context, method *billing.PaymentMethod) error {
	r.methods[method.ID] = method
	return nil
}

type fakeChargeRepo struct {
	charges map[uuid.UUID]*billing.StandaloneCharge
}

func newFakeChargeRepo() *fakeChargeRepo {
	return &fakeChargeRepo{charges: make(map[uuid.UUID]*billing.StandaloneCharge)}
}

func (r *fakeChargeRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.StandaloneCharge, error) {
	c, ok := r.charges[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeChargeRepo) FindByStatus(_ context.Context, status billing.ChargeStatus, _ shared.Filter) ([]billing.StandaloneCharge, error) {
	var out []billing.StandaloneCharge
	for _, c := range r.charges {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChargeRepo) FindAll(_ context.Context, _ shared.Filter) ([]billing.StandaloneCharge, error) {
	out := make([]billing.StandaloneCharge, 0, len(r.charges))
	for _, c := range r.charges {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeChargeRepo) Save(_ context.Context, charge *billing.StandaloneCharge) error {
	r.charges[charge.ID] = charge
	return nil
}

func (r *fakeChargeRepo) SaveWithLock(_ context.Context, charge *billing.StandaloneCharge) error {
	r.charges[charge.ID] = charge
	return nil
}
