package services

import (
	"time"

	"pos-service/models"
)

// SaleAppender is the write-only contract of the sales log.
type SaleAppender interface {
	Append(s models.Sale) error
}

// SaleRecorder builds and appends one sale row per form submission.
type SaleRecorder struct {
	log SaleAppender
}

func NewSaleRecorder(log SaleAppender) *SaleRecorder {
	return &SaleRecorder{log: log}
}

func (r *SaleRecorder) Record(form models.SaleForm) (models.Sale, error) {
	s := models.Sale{
		Time:     time.Now().Format(models.DatetimeLayout),
		Item:     form.Item,
		Quantity: form.Quantity,
		Price:    form.Price,
		Total:    float64(form.Quantity) * form.Price,
	}
	if err := r.log.Append(s); err != nil {
		return models.Sale{}, err
	}
	return s, nil
}
