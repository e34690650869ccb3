package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/models"
	"pos-service/store"
)

func TestTotalForDateFiltersByPrefix(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	svc := NewReportService(mem)

	orders := []models.Order{
		{OrderID: "a", Datetime: "2026-08-29 09:00:00", Total: 100},
		{OrderID: "b", Datetime: "2026-08-29 18:30:00", Total: 50},
		{OrderID: "c", Datetime: "2026-08-28 23:59:59", Total: 999},
	}
	for _, o := range orders {
		require.NoError(t, mem.AppendOrder(ctx, o))
	}

	total, err := svc.TotalForDate(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)

	total, err = svc.TotalForDate(ctx, "2026-08-27")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTotalForDateSurfacesStoreErrors(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.FailLoads = errors.New("auth expired")
	svc := NewReportService(mem)

	total, err := svc.TotalForDate(context.Background(), "2026-08-29")
	assert.Error(t, err)
	assert.Zero(t, total)
}
