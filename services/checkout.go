package services

import (
	"context"
	"time"

	"pos-service/models"
	"pos-service/store"
	"pos-service/utils"
)

// CheckoutService turns a basket into one appended order row. No
// inventory is touched and the payment method is a free-text label.
type CheckoutService struct {
	orders store.OrderStore
}

func NewCheckoutService(orders store.OrderStore) *CheckoutService {
	return &CheckoutService{orders: orders}
}

func (s *CheckoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (models.Order, error) {
	subtotal := 0.0
	for _, it := range req.Items {
		subtotal += it.Price * float64(it.Qty)
	}
	total := subtotal - req.Discount
	if total < 0 {
		total = 0
	}
	payment := req.Payment
	if payment == "" {
		payment = models.DefaultPayment
	}

	o := models.Order{
		OrderID:  utils.NewID(),
		Datetime: time.Now().Format(models.DatetimeLayout),
		Items:    req.Items,
		Subtotal: subtotal,
		Discount: req.Discount,
		Total:    total,
		Payment:  payment,
	}
	if err := s.orders.AppendOrder(ctx, o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}
