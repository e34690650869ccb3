package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pos-service/models"
)

var (
	productHeader = []interface{}{"id", "name", "price", "category", "image", "active"}
	orderHeader   = []interface{}{"order_id", "datetime", "items", "subtotal", "discount", "total", "payment"}
)

var truthy = map[string]bool{"TRUE": true, "1": true, "YES": true}

// parseActive coerces a cell to a boolean by case-insensitive membership
// in {"TRUE", "1", "YES"}. Anything else is inactive.
func parseActive(cell string) bool {
	return truthy[strings.ToUpper(strings.TrimSpace(cell))]
}

// parsePrice coerces a cell to a non-negative decimal. Missing or
// unparseable cells default to 0, as do negative values.
func parsePrice(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return fmt.Sprint(row[idx])
}

func productFromRow(row []interface{}) models.Product {
	return models.Product{
		ID:       cellString(row, 0),
		Name:     cellString(row, 1),
		Price:    parsePrice(cellString(row, 2)),
		Category: cellString(row, 3),
		Image:    cellString(row, 4),
		Active:   parseActive(cellString(row, 5)),
	}
}

func productToRow(p models.Product) []interface{} {
	active := "FALSE"
	if p.Active {
		active = "TRUE"
	}
	return []interface{}{p.ID, p.Name, p.Price, p.Category, p.Image, active}
}

func orderToRow(o models.Order) ([]interface{}, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("serialize order items: %w", err)
	}
	return []interface{}{o.OrderID, o.Datetime, string(items), o.Subtotal, o.Discount, o.Total, o.Payment}, nil
}

func orderFromRow(row []interface{}) models.Order {
	o := models.Order{
		OrderID:  cellString(row, 0),
		Datetime: cellString(row, 1),
		Subtotal: parsePrice(cellString(row, 3)),
		Discount: parsePrice(cellString(row, 4)),
		Total:    parsePrice(cellString(row, 5)),
		Payment:  cellString(row, 6),
	}
	// items column is opaque JSON; a row with a mangled cell still counts
	// for aggregation, so decode errors leave Items nil
	_ = json.Unmarshal([]byte(cellString(row, 2)), &o.Items)
	return o
}
