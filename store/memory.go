package store

import (
	"context"
	"sync"

	"pos-service/models"
)

// MemoryStore implements ProductStore and OrderStore with the same
// whole-table-replace semantics as the spreadsheet: SaveProducts swaps
// the full set, AppendOrder only appends. Used by tests.
type MemoryStore struct {
	mu       sync.Mutex
	products []models.Product
	orders   []models.Order

	// FailLoads makes every read return this error, to exercise the
	// degraded paths.
	FailLoads error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLoads != nil {
		return nil, m.FailLoads
	}
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) SaveProducts(ctx context.Context, items []models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make([]models.Product, len(items))
	copy(m.products, items)
	return nil
}

func (m *MemoryStore) AppendOrder(ctx context.Context, o models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
	return nil
}

func (m *MemoryStore) LoadOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLoads != nil {
		return nil, m.FailLoads
	}
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

var (
	_ ProductStore = (*MemoryStore)(nil)
	_ OrderStore   = (*MemoryStore)(nil)
)
