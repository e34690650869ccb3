package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/models"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSalesLogWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	log := NewSalesLog(path)

	for i := 0; i < 3; i++ {
		err := log.Append(models.Sale{
			Time:     "2026-08-29 10:00:00",
			Item:     "coffee",
			Quantity: 2,
			Price:    3.5,
			Total:    7,
		})
		require.NoError(t, err)
	}

	rows := readAll(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Time", "Item", "Quantity", "Price", "Total"}, rows[0])
	for _, row := range rows[1:] {
		assert.Equal(t, []string{"2026-08-29 10:00:00", "coffee", "2", "3.5", "7"}, row)
	}
}

func TestSalesLogAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	log := NewSalesLog(path)

	require.NoError(t, log.Append(models.Sale{Time: "t1", Item: "a", Quantity: 1, Price: 1, Total: 1}))

	// a fresh handle against the same file must not re-write the header
	require.NoError(t, NewSalesLog(path).Append(models.Sale{Time: "t2", Item: "b", Quantity: 2, Price: 2, Total: 4}))

	rows := readAll(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "t2", rows[2][0])
}
