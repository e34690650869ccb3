package models

// DefaultPayment is used when checkout omits a payment method.
const DefaultPayment = "CASH"

// DatetimeLayout is the format orders and sales are stamped with,
// truncated to seconds.
const DatetimeLayout = "2006-01-02 15:04:05"

// LineItem is one {price, qty} entry within a checkout basket. Name and
// id are carried opaquely: they are captured by value at checkout time and
// never resolved against the live catalog.
type LineItem struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name,omitempty"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

type Order struct {
	OrderID  string     `json:"order_id"`
	Datetime string     `json:"datetime"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Discount float64    `json:"discount"`
	Total    float64    `json:"total"`
	Payment  string     `json:"payment"`
}

type CheckoutRequest struct {
	Items    []LineItem `json:"items" binding:"required"`
	Discount float64    `json:"discount"`
	Payment  string     `json:"payment"`
}

type CheckoutResponse struct {
	OK      bool    `json:"ok"`
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}
