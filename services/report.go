package services

import (
	"context"
	"strings"

	"pos-service/store"
)

// ReportService computes the back-office aggregate with a full scan of
// the orders table on every call.
type ReportService struct {
	orders store.OrderStore
}

func NewReportService(orders store.OrderStore) *ReportService {
	return &ReportService{orders: orders}
}

// TotalForDate sums the total of every order whose stored datetime starts
// with the given date (layout "2006-01-02"). Store failures are returned
// to the caller; the HTTP layer decides whether to degrade to zero.
func (s *ReportService) TotalForDate(ctx context.Context, date string) (float64, error) {
	orders, err := s.orders.LoadOrders(ctx)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, o := range orders {
		if strings.HasPrefix(o.Datetime, date) {
			sum += o.Total
		}
	}
	return sum, nil
}
