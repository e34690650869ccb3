package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/models"
	"pos-service/store"
)

func newCatalog(t *testing.T) (*CatalogService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	return NewCatalogService(mem), mem
}

func TestCreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalog(t)

	p, err := svc.Create(ctx, models.CreateProductRequest{Name: "Latte", Price: 45})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Active)
	assert.Equal(t, "uncategorized", p.Category)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p, items[0])
}

func TestToggleTwiceRestoresActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalog(t)

	p, err := svc.Create(ctx, models.CreateProductRequest{Name: "Tea"})
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, p.ID))
	items, _ := svc.List(ctx)
	assert.False(t, items[0].Active)

	require.NoError(t, svc.Toggle(ctx, p.ID))
	items, _ = svc.List(ctx)
	assert.True(t, items[0].Active)
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalog(t)

	p, err := svc.Create(ctx, models.CreateProductRequest{Name: "Tea"})
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, "missing"))
	items, _ := svc.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, p, items[0])
}

func TestUpdateOverwritesExactlyFourFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalog(t)

	p, err := svc.Create(ctx, models.CreateProductRequest{Name: "Old", Price: 10, Category: "drinks", Image: "old.png"})
	require.NoError(t, err)
	require.NoError(t, svc.Toggle(ctx, p.ID)) // now inactive

	err = svc.Update(ctx, p.ID, models.UpdateProductRequest{Name: "New", Price: 20, Category: "food", Image: "new.png"})
	require.NoError(t, err)

	items, _ := svc.List(ctx)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, 20.0, got.Price)
	assert.Equal(t, "food", got.Category)
	assert.Equal(t, "new.png", got.Image)
	assert.False(t, got.Active, "update must not touch the active flag")
}

func TestDeleteRemovesID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalog(t)

	p1, err := svc.Create(ctx, models.CreateProductRequest{Name: "A"})
	require.NoError(t, err)
	p2, err := svc.Create(ctx, models.CreateProductRequest{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p1.ID))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p2.ID, items[0].ID)
	for _, it := range items {
		assert.NotEqual(t, p1.ID, it.ID)
	}
}

func TestActiveByCategoryGroupsAndSkipsInactive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalog(t)

	_, err := svc.Create(ctx, models.CreateProductRequest{Name: "Latte", Category: "coffee"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateProductRequest{Name: "Croissant", Category: "bakery"})
	require.NoError(t, err)
	hidden, err := svc.Create(ctx, models.CreateProductRequest{Name: "Off", Category: "coffee"})
	require.NoError(t, err)
	require.NoError(t, svc.Toggle(ctx, hidden.ID))

	grouped, categories, err := svc.ActiveByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bakery", "coffee"}, categories)
	require.Len(t, grouped["coffee"], 1)
	assert.Equal(t, "Latte", grouped["coffee"][0].Name)
}
