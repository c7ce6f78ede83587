package billing_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de facturación. Respetan los
// contratos de los repos: los Get devuelven (nil, nil) si no existe y el
// SequenceStore asigna números únicos bajo concurrencia.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSequenceStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newFakeSequenceStore() *fakeSequenceStore {
	return &fakeSequenceStore{counters: make(map[string]int64)}
}

func (f *fakeSequenceStore) AllocateNext(_ context.Context, sequenceID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[sequenceID]++
	return f.counters[sequenceID], nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	f := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	f.orders[order.ID] = order
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    []*entity.InvoiceItem
	history  []*entity.InvoiceHistoryEntry
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) CreateItem(_ context.Context, item *entity.InvoiceItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeInvoiceRepo) AppendHistory(_ context.Context, entry *entity.InvoiceHistoryEntry) error {
	f.history = append(f.history, entry)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetItemsByInvoiceID(_ context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, item := range f.items {
		if item.InvoiceID == invoiceID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetHistoryByInvoiceID(_ context.Context, invoiceID string) ([]*entity.InvoiceHistoryEntry, error) {
	var out []*entity.InvoiceHistoryEntry
	for _, h := range f.history {
		if h.InvoiceID == invoiceID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if _, ok := f.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) UpdateFields(_ context.Context, id string, patch map[string]any) error {
	inv, ok := f.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	for k, v := range patch {
		switch k {
		case "estado":
			inv.Status, _ = v.(string)
		case "notas":
			inv.Notes, _ = v.(string)
		case "pdf_url":
			inv.PDFURL, _ = v.(string)
		case "xml_url":
			inv.XMLURL, _ = v.(string)
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes. No simula
// rollback: los tests de atomicidad real viven en la capa postgres.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	orderRepo   *fakeOrderRepo
	seq         *fakeSequenceStore
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	seq repository.SequenceStore,
) error) error {
	return fn(f.invoiceRepo, f.orderRepo, f.seq)
}

// ── helpers de dominio ────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func settledOrder(id, customerID string, number int64) *entity.Order {
	return &entity.Order{
		ID:            id,
		Number:        number,
		CustomerID:    customerID,
		WithHandle:    2,
		Type:          entity.OrderTypeRefill,
		Priority:      entity.PriorityNormal,
		Status:        entity.OrderStatusDelivered,
		FinanceStatus: entity.FinanceCollected,
	}
}
