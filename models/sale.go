package models

type Sale struct {
	Time     string  `json:"time"`
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type SaleForm struct {
	Item     string  `form:"item" binding:"required"`
	Quantity int     `form:"quantity"`
	Price    float64 `form:"price"`
}
