package store

import (
	"context"
	"errors"

	"pos-service/models"
)

// ErrRowNotFound is returned by lookups against a loaded table. The
// catalog operations treat it as a no-op rather than a failure.
var ErrRowNotFound = errors.New("row not found")

// ProductStore is the whole-table contract of the products worksheet:
// the only mutation primitive is a full replace, so every CRUD operation
// is load-all, mutate in memory, save-all. Last writer wins.
type ProductStore interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
	SaveProducts(ctx context.Context, items []models.Product) error
}

// OrderStore is the append-only contract of the orders worksheet.
type OrderStore interface {
	AppendOrder(ctx context.Context, o models.Order) error
	LoadOrders(ctx context.Context) ([]models.Order, error)
}
