package orders_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de pedidos.

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

type fakePriceRepo struct {
	cfg     *entity.PriceConfig
	history []*entity.PriceConfigHistoryEntry
}

func (f *fakePriceRepo) Get(_ context.Context) (*entity.PriceConfig, error) {
	return f.cfg, nil
}

func (f *fakePriceRepo) Upsert(_ context.Context, price, priceHigh *decimal.Decimal) error {
	if f.cfg == nil {
		f.cfg = &entity.PriceConfig{}
	}
	if price != nil {
		f.cfg.Price = price
	}
	if priceHigh != nil {
		f.cfg.PriceHigh = priceHigh
	}
	return nil
}

func (f *fakePriceRepo) AppendHistory(_ context.Context, entry *entity.PriceConfigHistoryEntry) error {
	f.history = append(f.history, entry)
	return nil
}

func (f *fakePriceRepo) ListHistory(_ context.Context) ([]*entity.PriceConfigHistoryEntry, error) {
	return f.history, nil
}

type fakeTxRunner struct {
	orderRepo *fakeOrderRepo
	seq       *fakeSequenceStore
}

func (f *fakeTxRunner) RunOrders(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	seq repository.SequenceStore,
) error) error {
	return fn(f.orderRepo, f.seq)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
