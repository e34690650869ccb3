package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"pos-service/models"
)

var salesHeader = []string{"Time", "Item", "Quantity", "Price", "Total"}

// SalesLog appends sale records to a local CSV file. Write-only: the file
// is never read back, and the header row is written only when the file
// did not previously exist.
type SalesLog struct {
	path string
}

func NewSalesLog(path string) *SalesLog {
	return &SalesLog{path: path}
}

func (l *SalesLog) Append(s models.Sale) error {
	_, statErr := os.Stat(l.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sales file: %w", err)
	}

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(salesHeader); err != nil {
			f.Close()
			return fmt.Errorf("write sales header: %w", err)
		}
	}
	row := []string{
		s.Time,
		s.Item,
		strconv.Itoa(s.Quantity),
		strconv.FormatFloat(s.Price, 'f', -1, 64),
		strconv.FormatFloat(s.Total, 'f', -1, 64),
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("write sale: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush sales file: %w", err)
	}
	return f.Close()
}
